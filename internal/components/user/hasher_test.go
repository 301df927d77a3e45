package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	plaintexts := []string{"secret1", "correct horse battery staple", "pässwörd", "123456"}

	for _, p := range plaintexts {
		hash, err := HashPassword(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hash)
		assert.True(t, VerifyPassword(p, hash), "hash of %q must verify", p)
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("secret2", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("Secret1", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// Malformed stored hashes must read as a plain mismatch, never a panic.
	assert.False(t, VerifyPassword("secret1", ""))
	assert.False(t, VerifyPassword("secret1", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("secret1", "$2a$10$truncated"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// Different salts, yet both verify against the same plaintext.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret1", first))
	assert.True(t, VerifyPassword("secret1", second))
}
