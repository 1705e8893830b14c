package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecretLength(t *testing.T) {
	secret, err := GenerateSecret(24)

	require.NoError(t, err)
	// 24 bytes encode to 32 raw base64 characters
	assert.Equal(t, 32, len(secret))
}

func TestGenerateSecretIsURLSafe(t *testing.T) {
	secret, err := GenerateSecret(24)

	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(secret, "+/=\n "))
}

func TestGenerateSecretNeverRepeats(t *testing.T) {
	first, err := GenerateSecret(24)
	require.NoError(t, err)
	second, err := GenerateSecret(24)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
