package dbg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dbg"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { _ = dbg.Configure(dbg.DefaultConfig()) })

	err := dbg.Configure(dbg.Config{Tag: "column", SepChar: "-"})
	assert.ErrorIs(t, err, dbg.ErrInvalidConfig)

	cfg := dbg.DefaultConfig()
	cfg.Tag = dbg.TagFile
	require.NoError(t, dbg.Configure(cfg))
}
