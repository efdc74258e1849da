package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "correct horse")

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_BadFormat(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("anything", "not-a-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("anything", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA")
	assert.Error(t, err)
}
