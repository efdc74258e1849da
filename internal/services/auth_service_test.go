package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampta/resumecraft-backend/internal/auth"
	"github.com/ampta/resumecraft-backend/internal/models"
)

func newAuthFixture() (*AuthService, *memUserRepo, *fakeNotifier, *auth.TokenService) {
	users := newMemUserRepo()
	notifier := &fakeNotifier{}
	tokens := auth.NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(users, tokens, notifier, "http://localhost:8080")
	return svc, users, notifier, tokens
}

func TestRegister_CreatesUnverifiedAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, notifier, _ := newAuthFixture()

	resp, err := svc.Register(ctx, "Alice", "Alice@Example.com", "s3cret-pw", "")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, models.PlanBasic, resp.SubscriptionPlan)
	assert.False(t, resp.EmailVerified)
	assert.Empty(t, resp.Token)

	stored, err := users.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.EmailVerified)
	assert.NotEmpty(t, stored.VerificationToken)
	require.NotNil(t, stored.VerificationExpires)
	assert.WithinDuration(t, time.Now().UTC().Add(VerificationTTL), *stored.VerificationExpires, time.Minute)

	// Credential is hashed, never stored in the clear
	assert.NotEqual(t, "s3cret-pw", stored.Password)
	assert.NotContains(t, stored.Password, "s3cret-pw")

	require.Equal(t, 1, notifier.sentCount())
	assert.Equal(t, "alice@example.com", notifier.sent[0].to)
	assert.Contains(t, notifier.sent[0].body, stored.VerificationToken)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newAuthFixture()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw-one", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Mallory", "ALICE@example.com", "pw-two", "")
	assert.Equal(t, models.KindConflict, models.KindOf(err))
	assert.Equal(t, 1, users.count())
}

func TestRegister_NotifierFailureKeepsAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, notifier, _ := newAuthFixture()
	notifier.failWith = errBoom

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", "")
	assert.Equal(t, models.KindDependencyFailure, models.KindOf(err))

	// The account row survives; the user recovers via resend.
	stored, err2 := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err2)
	require.NotNil(t, stored)
	assert.False(t, stored.EmailVerified)
}

func TestVerifyEmail_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newAuthFixture()

	resp, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", "")
	require.NoError(t, err)

	stored, _ := users.FindByID(ctx, resp.ID)
	token := stored.VerificationToken

	require.NoError(t, svc.VerifyEmail(ctx, token))

	stored, _ = users.FindByID(ctx, resp.ID)
	assert.True(t, stored.EmailVerified)
	assert.Empty(t, stored.VerificationToken)
	assert.Nil(t, stored.VerificationExpires)

	// The consumed token no longer resolves.
	err = svc.VerifyEmail(ctx, token)
	assert.Equal(t, models.KindNotFound, models.KindOf(err))
}

func TestVerifyEmail_Expired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newAuthFixture()

	resp, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", "")
	require.NoError(t, err)

	stored, _ := users.FindByID(ctx, resp.ID)
	past := time.Now().UTC().Add(-time.Hour)
	stored.VerificationExpires = &past
	require.NoError(t, users.Update(ctx, stored))

	err = svc.VerifyEmail(ctx, stored.VerificationToken)
	assert.Equal(t, models.KindExpired, models.KindOf(err))

	// The token is reported expired, not consumed.
	after, _ := users.FindByID(ctx, resp.ID)
	assert.False(t, after.EmailVerified)
	assert.Equal(t, stored.VerificationToken, after.VerificationToken)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newAuthFixture()

	err := svc.VerifyEmail(context.Background(), "no-such-token")
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	err = svc.VerifyEmail(context.Background(), "")
	assert.Equal(t, models.KindInvalidArgument, models.KindOf(err))
}

func TestResendVerification_RotatesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, notifier, _ := newAuthFixture()

	resp, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", "")
	require.NoError(t, err)

	before, _ := users.FindByID(ctx, resp.ID)
	oldToken := before.VerificationToken

	require.NoError(t, svc.ResendVerification(ctx, "alice@example.com"))
	assert.Equal(t, 2, notifier.sentCount())

	after, _ := users.FindByID(ctx, resp.ID)
	assert.NotEqual(t, oldToken, after.VerificationToken)

	// The previous token is invalidated.
	err = svc.VerifyEmail(ctx, oldToken)
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	require.NoError(t, svc.VerifyEmail(ctx, after.VerificationToken))
}

func TestResendVerification_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newAuthFixture()

	err := svc.ResendVerification(ctx, "nobody@example.com")
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	resp, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", "")
	require.NoError(t, err)
	stored, _ := users.FindByID(ctx, resp.ID)
	require.NoError(t, svc.VerifyEmail(ctx, stored.VerificationToken))

	err = svc.ResendVerification(ctx, "alice@example.com")
	assert.Equal(t, models.KindConflict, models.KindOf(err))
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _, tokens := newAuthFixture()

	resp, err := svc.Register(ctx, "Alice", "alice@example.com", "pw-123", "")
	require.NoError(t, err)

	logged, err := svc.Login(ctx, "Alice@Example.com", "pw-123")
	require.NoError(t, err)
	require.NotEmpty(t, logged.Token)

	accountID, err := tokens.Validate(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, accountID)
}

func TestLogin_EnumerationResistance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "right-pw", "")
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, "alice@example.com", "wrong-pw")
	_, errUnknownEmail := svc.Login(ctx, "nobody@example.com", "whatever")

	// Both failures are byte-identical so accounts cannot be enumerated.
	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.Equal(t, models.KindUnauthorized, models.KindOf(errWrongPassword))
	assert.Equal(t, models.KindUnauthorized, models.KindOf(errUnknownEmail))
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestGetProfile_AccountGone(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newAuthFixture()

	_, err := svc.GetProfile(context.Background(), Principal{AccountID: "64f000000000000000000000"})
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _, _ := newAuthFixture()

	resp, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", "")
	require.NoError(t, err)
	p := Principal{AccountID: resp.ID}

	updated, err := svc.UpdateProfile(ctx, p, "Alice Cooper", "https://cdn.example.com/alice.png")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "https://cdn.example.com/alice.png", updated.ProfileImageURL)
	assert.Equal(t, "alice@example.com", updated.Email)

	// Empty fields leave existing values alone.
	unchanged, err := svc.UpdateProfile(ctx, p, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", unchanged.Name)
}
