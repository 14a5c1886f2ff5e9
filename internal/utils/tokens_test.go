package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshToken(t *testing.T) {
	tok, err := NewRefreshToken(32)
	require.NoError(t, err)
	assert.Len(t, tok, 64)

	b, err := hex.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, b, 32)

	other, err := NewRefreshToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestNewRefreshTokenRejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewRefreshToken(n)
		assert.Error(t, err, "size %d", n)
	}
}
