package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesBySize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r, err := NewLogRotator(dir, 1, 2, 0, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("x", 600*1024))
	for range 4 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			backups++
		}
	}
	assert.Equal(t, 2, backups, "backups beyond max_backups are pruned")
	assert.FileExists(t, r.Path())
}

func TestLogRotator_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 5, 0, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("y", 700*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, logFileName+".*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestNewWithFile_WritesToRotator(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json"}, FileConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info().Str("component", "test").Msg("to file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
}
