package services

import (
	"context"
	"strings"

	"github.com/ampta/resumecraft-backend/internal/models"
	"github.com/ampta/resumecraft-backend/internal/repository"
)

// Fixed template catalog. Basic accounts get the ATS-friendly subset;
// premium unlocks everything.
var (
	allTemplates   = []string{"01", "02", "03", "04", "05"}
	basicTemplates = []string{"01", "02"}
)

// TemplateAccess describes which templates the caller may use.
type TemplateAccess struct {
	AvailableTemplates []string `json:"availableTemplates"`
	AllTemplates       []string `json:"allTemplates"`
	SubscriptionPlan   string   `json:"subscriptionPlan"`
	IsPremium          bool     `json:"isPremium"`
}

// TemplateService derives template entitlements from the subscription plan.
type TemplateService struct {
	users repository.UserRepository
}

func NewTemplateService(users repository.UserRepository) *TemplateService {
	return &TemplateService{users: users}
}

func (s *TemplateService) GetTemplates(ctx context.Context, p Principal) (TemplateAccess, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return TemplateAccess{}, err
	}

	isPremium := strings.EqualFold(user.SubscriptionPlan, models.PlanPremium)

	available := basicTemplates
	if isPremium {
		available = allTemplates
	}

	return TemplateAccess{
		AvailableTemplates: append([]string{}, available...),
		AllTemplates:       append([]string{}, allTemplates...),
		SubscriptionPlan:   user.SubscriptionPlan,
		IsPremium:          isPremium,
	}, nil
}
