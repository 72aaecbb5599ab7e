// SPDX-License-Identifier: MIT
// Package: motif/internal/log

package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motif/internal/log"
)

func TestNew_DropsTime(t *testing.T) {
	var buf bytes.Buffer
	log.New(&buf, slog.LevelInfo).Info("rendered", "kind", "grid")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, slog.TimeKey)
	assert.Equal(t, "rendered", entry[slog.MessageKey])
	assert.Equal(t, "grid", entry["kind"])
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	assert.Zero(t, buf.Len())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, log.ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, log.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, log.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, log.ParseLevel("chatty"))
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, slog.LevelInfo)
	ctx := log.NewContext(context.Background(), logger)
	assert.Same(t, logger, log.FromContextOrDiscard(ctx))

	discard := log.FromContextOrDiscard(context.Background())
	require.NotNil(t, discard)
	discard.Error("nowhere")
	assert.Zero(t, buf.Len())
}
