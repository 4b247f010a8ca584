package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Configure("local", false, "debug")

	ctx := ContextWithRequestID(context.Background(), "req-123")
	WithContext(ctx).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["requestId"])
	assert.Equal(t, "hello", line["msg"])
	assert.Contains(t, line["function"], "TestWithContext_AddsRequestID")
}

func TestRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestConfigure_InvalidLevelDefaultsToDebug(t *testing.T) {
	Configure("local", false, "nope")
	assert.Equal(t, "debug", logger.GetLevel().String())
}
