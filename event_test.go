package dbg_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dbg"
)

func TestAttach(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	dbg.Attach(log.Info(), "n, xs, m", 3, [][]int{{1}}, map[string]int{"a": 1}).Msg("state")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "state", got["message"])
	assert.Equal(t, "3", got["n"])
	assert.Equal(t, "[\n  [1]\n]", got["xs"])
	assert.Equal(t, "{a: 1}", got["m"])
}

func TestAttachDisabledEvent(t *testing.T) {
	t.Parallel()
	log := zerolog.Nop()
	assert.NotPanics(t, func() {
		dbg.Attach(log.Debug(), "x", 1).Msg("dropped")
	})
}
