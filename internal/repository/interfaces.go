// Package repository defines the persistence interfaces and their MongoDB
// implementations. Finders return (nil, nil) when no document matches;
// translating that into a domain error is the service layer's job.
package repository

import (
	"context"

	"github.com/ampta/resumecraft-backend/internal/models"
)

type UserRepository interface {
	// Create inserts the user and fills in its ID and timestamps.
	Create(ctx context.Context, user *models.User) error

	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail looks up a user by email. Emails are stored lowercased,
	// so callers must lowercase before querying.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	FindByVerificationToken(ctx context.Context, token string) (*models.User, error)

	// Update replaces the stored document and bumps updated_at.
	Update(ctx context.Context, user *models.User) error
}

type PaymentRepository interface {
	// Create inserts the payment and fills in its ID and created_at.
	Create(ctx context.Context, payment *models.Payment) error

	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	FindByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error)

	// FindByUserID returns the user's payments, most recent first.
	FindByUserID(ctx context.Context, userID string) ([]models.Payment, error)

	FindByStatus(ctx context.Context, status string) ([]models.Payment, error)

	// MarkPaid atomically transitions the order from "created" to "paid",
	// recording the gateway payment id and signature. It reports whether
	// this call performed the transition; false means the order was
	// already paid (a duplicate callback) and nothing changed.
	MarkPaid(ctx context.Context, orderID, paymentID, signature string) (bool, error)
}

type ResumeRepository interface {
	// Create inserts the resume and fills in its ID and timestamps.
	Create(ctx context.Context, resume *models.Resume) error

	// FindByUserID returns the owner's resumes, most recently updated first.
	FindByUserID(ctx context.Context, userID string) ([]models.Resume, error)

	// FindByUserAndID scopes the lookup to the owner, so another account's
	// resume is indistinguishable from a missing one.
	FindByUserAndID(ctx context.Context, userID, id string) (*models.Resume, error)

	// Update replaces the stored document and bumps updated_at.
	Update(ctx context.Context, resume *models.Resume) error

	Delete(ctx context.Context, userID, id string) error
}
