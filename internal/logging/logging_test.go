package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeHonorsMaxLogFilesEnv(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("log dir is only redirectable via XDG_STATE_HOME on linux")
	}

	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("FILMROOM_DEBUG", "1")
	t.Setenv("FILMROOM_DEBUG_FILE", "")
	t.Setenv("FILMROOM_MAX_LOG_FILES", "2")
	t.Cleanup(func() {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	})

	logDir := filepath.Join(stateHome, "filmroom")
	require.NoError(t, os.MkdirAll(logDir, 0755))
	for _, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(logDir, name), []byte("{}\n"), 0644))
	}

	// The flag default is 1000; the env var must win over it.
	logFilePath, err := Initialize(false, "", 1000)
	require.NoError(t, err)
	require.NotEmpty(t, logFilePath)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	logs := 0
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs++
		}
	}
	assert.Equal(t, 2, logs, "rotation must keep the env-configured count including the new file")
}

func TestRotateLogsKeepsNewestUnderLimit(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.log", "b.log", "notalog.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	require.NoError(t, rotateLogs(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	// One .log removed to make room for the next file; other extensions
	// are untouched.
	assert.Len(t, names, 2)
	assert.Contains(t, names, "notalog.txt")
}
