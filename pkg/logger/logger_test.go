package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugIsFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, false)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestExtendKeepsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, true)
	log = log.Extend(log.With().Str("run", "abc"))

	log.Debug().Int("step", 3).Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["run"])
	assert.Equal(t, float64(3), entry["step"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("nothing") })
}
