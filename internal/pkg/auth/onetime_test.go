package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOneTimeToken(t *testing.T) {
	raw, hash, err := NewOneTimeToken()
	require.NoError(t, err)

	// 20 random bytes hex-encoded; the stored hash never equals the secret.
	assert.Len(t, raw, 40)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, raw, hash)
	assert.Equal(t, HashOneTimeToken(raw), hash)
}

func TestOneTimeTokensAreUnique(t *testing.T) {
	first, _, err := NewOneTimeToken()
	require.NoError(t, err)
	second, _, err := NewOneTimeToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashOriginDependsOnSecret(t *testing.T) {
	a := HashOrigin("203.0.113.10", "secret-a")
	b := HashOrigin("203.0.113.10", "secret-b")
	c := HashOrigin("203.0.113.11", "secret-a")

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, HashOrigin("203.0.113.10", "secret-a"))
	assert.NotContains(t, a, "203.0.113.10")
}
