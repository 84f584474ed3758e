package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uikit.log")

	logger, closer, err := New("debug", path)
	require.NoError(t, err)
	logger.Debug().Str("alert_id", "abc").Msg("Alert shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.HasPrefix(line, "{"), "expected JSON, got %q", line)
	assert.Contains(t, line, `"alert_id":"abc"`)
	assert.Contains(t, line, `"component":"uikit"`)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uikit.log")

	logger, closer, err := New("warn", path)
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	_, closer, err := New("info", "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestNewUnopenablePath(t *testing.T) {
	_, _, err := New("info", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}

func TestNewEmptyLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uikit.log")

	logger, closer, err := New("", path)
	require.NoError(t, err)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
