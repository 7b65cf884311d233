package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level("debug"))
	assert.Equal(t, slog.LevelWarn, Level("WARNING"))
	assert.Equal(t, slog.LevelError, Level(" error "))
	assert.Equal(t, slog.LevelInfo, Level("verbose"))
}

func TestNew(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	buf := &bytes.Buffer{}
	logger := New("info", true, buf)
	logger.Debug("hidden")
	logger.Info("processed bucket", "icons", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "processed bucket", record["msg"])
	assert.Equal(t, float64(3), record["icons"])
	assert.Contains(t, record, "timestamp")
	_, err := uuid.Parse(record["run"].(string))
	assert.NoError(t, err)
}
