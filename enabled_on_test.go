//go:build dbg

package dbg_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dbg"
)

func TestEnabledWrites(t *testing.T) {
	var buf bytes.Buffer
	dbg.SetOutput(&buf)
	require.NoError(t, dbg.Configure(dbg.Config{Indent: "  ", Tag: dbg.TagNone, SepWidth: 3, SepChar: "="}))
	t.Cleanup(func() {
		dbg.SetOutput(os.Stderr)
		_ = dbg.Configure(dbg.DefaultConfig())
	})

	x := 3
	dbg.Print(x, []int{1})
	dbg.Names("y", "hi")
	dbg.NL()
	dbg.Sep()
	dbg.SepWith(2, '-')

	assert.True(t, dbg.Enabled)
	assert.Equal(t, "x = 3 | []int{1} = [1]\ny = hi\n\n===\n--\n", buf.String())
}
