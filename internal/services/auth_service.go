package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ampta/resumecraft-backend/internal/auth"
	"github.com/ampta/resumecraft-backend/internal/models"
	"github.com/ampta/resumecraft-backend/internal/notify"
	"github.com/ampta/resumecraft-backend/internal/repository"
	"github.com/ampta/resumecraft-backend/pkg/utils"
)

// VerificationTTL is how long an email-verification token stays valid.
const VerificationTTL = 24 * time.Hour

// AuthService owns the account lifecycle: registration, email verification,
// login and profile management.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenService
	notifier   Notifier
	appBaseURL string
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, notifier Notifier, appBaseURL string) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		notifier:   notifier,
		appBaseURL: appBaseURL,
	}
}

// Register creates an unverified account and dispatches the verification
// email. The account write is not rolled back when the email fails; the
// caller gets a dependency error and the user recovers via resend.
func (s *AuthService) Register(ctx context.Context, name, email, password, profileImageURL string) (models.AuthResponse, error) {
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.AuthResponse{}, models.Wrap(models.KindUnexpected, "failed to check existing email", err)
	}
	if existing != nil {
		return models.AuthResponse{}, models.E(models.KindConflict, "user already exists with this email")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return models.AuthResponse{}, models.Wrap(models.KindUnexpected, "failed to hash credential", err)
	}

	expires := time.Now().UTC().Add(VerificationTTL)
	user := &models.User{
		Name:                name,
		Email:               email,
		Password:            hashed,
		ProfileImageURL:     profileImageURL,
		SubscriptionPlan:    models.PlanBasic,
		EmailVerified:       false,
		VerificationToken:   uuid.NewString(),
		VerificationExpires: &expires,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.AuthResponse{}, models.Wrap(models.KindUnexpected, "failed to create user", err)
	}
	log.Printf("registered user id=%s email=%s", user.ID.Hex(), user.Email)

	if err := s.sendVerificationEmail(user); err != nil {
		// The account row stays; the user can request a resend.
		return models.AuthResponse{}, models.Wrap(models.KindDependencyFailure, "failed to send verification email", err)
	}

	return user.ToAuthResponse(), nil
}

// VerifyEmail flips the account to verified when the token matches and has
// not expired. An expired token is left in place so the condition is
// reported rather than silently consumed; the user recovers via resend.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return models.E(models.KindInvalidArgument, "verification token is required")
	}

	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		return models.Wrap(models.KindUnexpected, "failed to look up verification token", err)
	}
	if user == nil {
		return models.E(models.KindNotFound, "invalid verification token")
	}

	if user.VerificationExpires != nil && user.VerificationExpires.Before(time.Now().UTC()) {
		return models.E(models.KindExpired, "verification token has expired, please request a new one")
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	user.VerificationExpires = nil
	if err := s.users.Update(ctx, user); err != nil {
		return models.Wrap(models.KindUnexpected, "failed to mark email verified", err)
	}

	log.Printf("email verified id=%s email=%s", user.ID.Hex(), user.Email)
	return nil
}

// ResendVerification rotates the verification token, invalidating the
// previous one, and dispatches a fresh email.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.Wrap(models.KindUnexpected, "failed to look up email", err)
	}
	if user == nil {
		return models.E(models.KindNotFound, "no account with this email")
	}
	if user.EmailVerified {
		return models.E(models.KindConflict, "email is already verified")
	}

	expires := time.Now().UTC().Add(VerificationTTL)
	user.VerificationToken = uuid.NewString()
	user.VerificationExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return models.Wrap(models.KindUnexpected, "failed to refresh verification token", err)
	}

	if err := s.sendVerificationEmail(user); err != nil {
		return models.Wrap(models.KindDependencyFailure, "failed to send verification email", err)
	}
	return nil
}

// Login checks the credential and issues a session token. Unknown email and
// wrong password come back as the same error so accounts cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	invalid := models.E(models.KindUnauthorized, "invalid email or password")

	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.AuthResponse{}, models.Wrap(models.KindUnexpected, "failed to look up email", err)
	}
	if user == nil {
		return models.AuthResponse{}, invalid
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return models.AuthResponse{}, invalid
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return models.AuthResponse{}, models.Wrap(models.KindUnexpected, "failed to issue session token", err)
	}

	resp := user.ToAuthResponse()
	resp.Token = token
	return resp, nil
}

func (s *AuthService) GetProfile(ctx context.Context, p Principal) (models.AuthResponse, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return user.ToAuthResponse(), nil
}

// UpdateProfile changes the mutable profile fields. Email is immutable.
func (s *AuthService) UpdateProfile(ctx context.Context, p Principal, name, profileImageURL string) (models.AuthResponse, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return models.AuthResponse{}, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if profileImageURL = strings.TrimSpace(profileImageURL); profileImageURL != "" {
		user.ProfileImageURL = profileImageURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return models.AuthResponse{}, models.Wrap(models.KindUnexpected, "failed to update profile", err)
	}
	return user.ToAuthResponse(), nil
}

func (s *AuthService) sendVerificationEmail(user *models.User) error {
	link := s.appBaseURL + "/api/auth/verify-email?token=" + user.VerificationToken
	return s.notifier.Send(user.Email, "Verify your email", notify.VerificationEmail(user.Name, link))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
