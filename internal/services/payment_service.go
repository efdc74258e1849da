package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ampta/resumecraft-backend/internal/models"
	"github.com/ampta/resumecraft-backend/internal/repository"
)

// Premium plan pricing, in minor currency units.
const (
	premiumAmount   = 99900
	premiumCurrency = "INR"
)

// PaymentService drives the gateway order lifecycle and the subscription
// upgrade it unlocks.
type PaymentService struct {
	payments repository.PaymentRepository
	users    repository.UserRepository
	gateway  PaymentGateway
}

func NewPaymentService(payments repository.PaymentRepository, users repository.UserRepository, gateway PaymentGateway) *PaymentService {
	return &PaymentService{
		payments: payments,
		users:    users,
		gateway:  gateway,
	}
}

// GatewayKeyID exposes the gateway's public key id for the checkout widget.
func (s *PaymentService) GatewayKeyID() string {
	return s.gateway.KeyID()
}

// CreateOrder mints an order at the gateway and persists the local record.
// The gateway call comes first: if it fails, nothing is written, and once
// this returns the order id is guaranteed to resolve for later callbacks.
func (s *PaymentService) CreateOrder(ctx context.Context, p Principal, planType string) (*models.Payment, error) {
	if !strings.EqualFold(planType, models.PlanPremium) {
		return nil, models.E(models.KindInvalidArgument, "invalid plan type")
	}

	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	receipt := models.PlanPremium + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	orderID, err := s.gateway.CreateOrder(ctx, premiumAmount, premiumCurrency, receipt)
	if err != nil {
		return nil, models.Wrap(models.KindDependencyFailure, "payment gateway order creation failed", err)
	}

	payment := &models.Payment{
		UserID:   user.ID.Hex(),
		OrderID:  orderID,
		Amount:   premiumAmount,
		Currency: premiumCurrency,
		PlanType: models.PlanPremium,
		Receipt:  receipt,
		Status:   models.PaymentStatusCreated,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to persist payment", err)
	}

	log.Printf("payment order created order_id=%s user=%s", orderID, payment.UserID)
	return payment, nil
}

// VerifyPayment is the trust boundary for gateway callbacks. An invalid
// signature is a false outcome, not an error, and mutates nothing. A valid
// signature transitions the order to paid and upgrades the owner's
// subscription exactly once, however many duplicate callbacks arrive: the
// store-level conditional update decides the single winner.
func (s *PaymentService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return false, models.E(models.KindInvalidArgument, "missing required payment parameters")
	}

	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		log.Printf("payment signature rejected order_id=%s", orderID)
		return false, nil
	}

	payment, err := s.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		return false, models.Wrap(models.KindUnexpected, "failed to look up payment", err)
	}
	if payment == nil {
		// A callback for an order this system never created.
		return false, models.E(models.KindNotFound, "payment not found")
	}

	transitioned, err := s.payments.MarkPaid(ctx, orderID, paymentID, signature)
	if err != nil {
		return false, models.Wrap(models.KindUnexpected, "failed to mark payment paid", err)
	}
	if !transitioned {
		// Duplicate valid callback: already paid, upgrade already applied.
		log.Printf("duplicate payment callback ignored order_id=%s", orderID)
		return true, nil
	}

	if err := s.upgradeSubscription(ctx, payment.UserID, payment.PlanType); err != nil {
		return false, err
	}
	return true, nil
}

// GetUserPayments returns the caller's payments, most recent first.
func (s *PaymentService) GetUserPayments(ctx context.Context, p Principal) ([]models.Payment, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.FindByUserID(ctx, user.ID.Hex())
	if err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to list payments", err)
	}
	return payments, nil
}

// GetPaymentDetails returns one of the caller's payments by gateway order
// id. Another account's order is indistinguishable from a missing one.
func (s *PaymentService) GetPaymentDetails(ctx context.Context, p Principal, orderID string) (*models.Payment, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to look up payment", err)
	}
	if payment == nil || payment.UserID != user.ID.Hex() {
		return nil, models.E(models.KindNotFound, "payment not found")
	}
	return payment, nil
}

func (s *PaymentService) upgradeSubscription(ctx context.Context, userID, planType string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.Wrap(models.KindUnexpected, "failed to load user for upgrade", err)
	}
	if user == nil {
		return models.E(models.KindNotFound, "user not found for subscription upgrade")
	}

	user.SubscriptionPlan = planType
	if err := s.users.Update(ctx, user); err != nil {
		return models.Wrap(models.KindUnexpected, "failed to upgrade subscription", err)
	}

	log.Printf("user %s upgraded to %s plan", userID, planType)
	return nil
}
