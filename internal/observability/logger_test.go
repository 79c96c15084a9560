package observability

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerTeesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator.log")

	logger, err := NewLogger(Options{Level: "debug", File: path, OutputPaths: []string{"stderr"}})
	require.NoError(t, err)

	logger.Info("starting blog generation", zap.Int("posts", 0))
	logger.Debug("picked tuple", zap.String("city", "Austin"))
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "INFO", entry["severity"])
	require.Equal(t, "starting blog generation", entry["message"])
	require.NotEmpty(t, entry["timestamp"])
}

func TestNewLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(Options{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zap.DebugLevel))
	require.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestFromContextDefaultsToNoop(t *testing.T) {
	require.Equal(t, NoopLogger(), FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	require.Equal(t, logger, FromContext(ctx))
}

func TestStartSpanWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "render")
	require.NotNil(t, span)
	require.Empty(t, TraceID(ctx))
	EndSpan(span, nil)
}
