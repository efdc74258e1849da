package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampta/resumecraft-backend/internal/models"
)

func TestGetTemplates_BasicPlan(t *testing.T) {
	t.Parallel()
	users := newMemUserRepo()
	svc := NewTemplateService(users)
	p := seedUser(t, users, "basic@example.com")

	access, err := svc.GetTemplates(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, []string{"01", "02"}, access.AvailableTemplates)
	assert.Equal(t, []string{"01", "02", "03", "04", "05"}, access.AllTemplates)
	assert.Equal(t, models.PlanBasic, access.SubscriptionPlan)
	assert.False(t, access.IsPremium)
}

func TestGetTemplates_PremiumPlan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := newMemUserRepo()
	svc := NewTemplateService(users)
	p := seedUser(t, users, "premium@example.com")

	user, _ := users.FindByID(ctx, p.AccountID)
	user.SubscriptionPlan = "PREMIUM" // plan comparison is case-insensitive
	require.NoError(t, users.Update(ctx, user))

	access, err := svc.GetTemplates(ctx, p)
	require.NoError(t, err)

	assert.Equal(t, access.AllTemplates, access.AvailableTemplates)
	assert.True(t, access.IsPremium)
}

func TestGetTemplates_AccountGone(t *testing.T) {
	t.Parallel()
	svc := NewTemplateService(newMemUserRepo())

	_, err := svc.GetTemplates(context.Background(), Principal{AccountID: "64f000000000000000000000"})
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}
