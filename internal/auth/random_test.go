package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken(t *testing.T) {
	token, err := NewVerificationToken()
	require.NoError(t, err)

	// 32 байта в hex
	assert.Len(t, token, 64)
	assert.Equal(t, strings.ToLower(token), token)

	other, err := NewVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestNewTempPassword(t *testing.T) {
	password, err := NewTempPassword()
	require.NoError(t, err)

	assert.Len(t, password, 8)
	for _, r := range password {
		assert.Contains(t, tempPasswordAlphabet, string(r))
	}

	other, err := NewTempPassword()
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}
