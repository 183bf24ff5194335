package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("senha123")
	assert.NoError(t, err)
	assert.NotEqual(t, "senha123", digest)
	assert.True(t, CheckPassword("senha123", digest))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("senha123")
	assert.NoError(t, err)
	second, err := HashPassword("senha123")
	assert.NoError(t, err)

	// Same plaintext, different salt, different digest.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("senha123", first))
	assert.True(t, CheckPassword("senha123", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	digest, err := HashPassword("senha123")
	assert.NoError(t, err)
	assert.False(t, CheckPassword("senha124", digest))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("senha123", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("senha123", ""))
}
