package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyPathIsNop(t *testing.T) {
	log, c, err := Open("", "debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
	assert.NoError(t, c.Close())
}

func TestOpen_WritesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.log")
	log, c, err := Open(p, "INFO")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("buildings", 5).Msg("catalog ready")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "catalog ready", rec["message"])
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "archglobe", rec["app"])
	assert.EqualValues(t, 5, rec["buildings"])
}

func TestOpen_Errors(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)

	_, _, err = Open(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" Warn ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)
}
