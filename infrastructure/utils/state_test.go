package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RoundTrip(t *testing.T) {
	state, err := GenerateState("secret", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, VerifyState("secret", state))
}

func TestState_Rejections(t *testing.T) {
	state, err := GenerateState("secret", time.Minute)
	require.NoError(t, err)
	expired, err := GenerateState("secret", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		state  string
	}{
		{"empty", "secret", ""},
		{"wrong key", "other", state},
		{"expired", "secret", expired},
		{"garbage", "secret", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, VerifyState(tt.secret, tt.state), ErrInvalidState)
		})
	}
}
