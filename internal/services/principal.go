package services

import (
	"context"

	"github.com/ampta/resumecraft-backend/internal/models"
	"github.com/ampta/resumecraft-backend/internal/repository"
)

// Principal is the resolved identity of the caller. It is only ever built
// from a session token that passed validation, so holding one means the
// request is authenticated. The account may still have been deleted between
// token issuance and use, which resolveAccount guards against.
type Principal struct {
	AccountID string
}

func resolveAccount(ctx context.Context, users repository.UserRepository, p Principal) (*models.User, error) {
	user, err := users.FindByID(ctx, p.AccountID)
	if err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to resolve account", err)
	}
	if user == nil {
		return nil, models.E(models.KindUnauthorized, "account no longer exists")
	}
	return user, nil
}
