package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("test-role", &buf, "info")
	require.NoError(t, err)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("caller-role", &buf, "debug")
	require.NoError(t, err)

	l.Debug().Msg("where")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

// TestNewLogger_FiltersBelowLevel verifies that entries under the configured
// level are dropped.
func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("level-role", &buf, "warn")
	require.NoError(t, err)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

// TestNewLogger_InvalidLevel verifies that an unknown level is rejected.
func TestNewLogger_InvalidLevel(t *testing.T) {
	l, err := NewLogger("bad", &bytes.Buffer{}, "loud")

	require.Error(t, err)
	assert.Nil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that a child logger keeps the
// parent's fields and does not leak its own into the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent, err := NewLogger("parent", &buf, "info")
	require.NoError(t, err)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "yes").Logger()
	child.Info().Msg("child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "yes", entry["extra"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "extra")
}

// TestFromContext_ReturnsAttachedLogger verifies that a logger attached with
// WithContext is returned by FromContext.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("ctx-role", &buf, "info")
	require.NoError(t, err)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "ctx-role")
}

// TestFromContext_WithoutLogger verifies that FromContext never returns nil.
func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nothing attached") })
}
