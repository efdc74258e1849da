package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("account-123")
	require.NoError(t, err)

	accountID, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "account-123", accountID)
	assert.False(t, svc.IsExpired(tok))
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", -1*time.Second)

	tok, err := svc.Issue("account-123")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, svc.IsExpired(tok))
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	tok, err := issuer.Issue("account-123")
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
		assert.True(t, svc.IsExpired(tok), "token %q", tok)
	}
}
