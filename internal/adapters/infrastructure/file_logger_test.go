package infrastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/ports"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		logPath     string
		expectError bool
		errorMsg    string
	}{
		{
			name:    "valid_path",
			logPath: "upstream.log",
		},
		{
			name:    "nested_path",
			logPath: filepath.Join("nested", "deep", "upstream.log"),
		},
		{
			name:        "empty_path",
			expectError: true,
			errorMsg:    "log file path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.logPath != "" {
				path = filepath.Join(t.TempDir(), tt.logPath)
			}

			logger, err := NewFileLoggerAdapter(path)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, logger)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			defer logger.Close()
			assert.DirExists(t, filepath.Dir(path))
			assert.FileExists(t, path)
		})
	}
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Debug("debug message", ports.F("city", "Paris"))
	logger.Info("info message", ports.F("duration_ms", int64(12)))
	logger.Warn("warn message")
	logger.Error("error message", ports.F("error", fmt.Errorf("HTTP error! Status: 500")))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 4)

	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "debug message", lines[0]["message"])
	assert.Equal(t, "Paris", lines[0]["city"])

	assert.Equal(t, "INFO", lines[1]["level"])
	assert.Equal(t, float64(12), lines[1]["duration_ms"])

	assert.Equal(t, "WARN", lines[2]["level"])

	assert.Equal(t, "ERROR", lines[3]["level"])
	assert.Equal(t, "HTTP error! Status: 500", lines[3]["error"])

	for _, line := range lines {
		assert.NotEmpty(t, line["timestamp"])
	}
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Info("real message", ports.F("message", "shadowed"), ports.F("level", "DEBUG"))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "real message", lines[0]["message"])
	assert.Equal(t, "INFO", lines[0]["level"])
}

func TestFileLoggerAdapter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")

	first, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	first.Info("first")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	second.Info("second")
	require.NoError(t, second.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0]["message"])
	assert.Equal(t, "second", lines[1]["message"])
}

func TestFileLoggerAdapter_WriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	assert.NotPanics(t, func() { logger.Info("dropped") })
	assert.Empty(t, readLogLines(t, path))
}

func TestFileLoggerAdapter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				logger.Info("concurrent", ports.F("writer", id), ports.F("seq", i))
			}
		}(w)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readLogLines(t, path), writers*perWriter)
}
