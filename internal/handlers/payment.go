package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampta/resumecraft-backend/internal/middleware"
	"github.com/ampta/resumecraft-backend/internal/services"
)

type PaymentHandler struct {
	svc *services.PaymentService
}

func NewPaymentHandler(svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateOrder handles POST /api/payments/create-order. The response carries
// everything the checkout widget needs to open.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	var req struct {
		PlanType string `json:"planType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Invalid request body"})
		return
	}

	payment, err := h.svc.CreateOrder(r.Context(), p, req.PlanType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"orderId":  payment.OrderID,
		"amount":   payment.Amount,
		"currency": payment.Currency,
		"receipt":  payment.Receipt,
		"keyId":    h.svc.GatewayKeyID(),
	})
}

// VerifyPayment handles POST /api/payments/verify, the gateway-driven
// callback flow, carrying no session.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Signature string `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Invalid request body"})
		return
	}

	valid, err := h.svc.VerifyPayment(r.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		writeError(w, err)
		return
	}

	if !valid {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Payment verification failed",
			"status":  "Failed",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Payment verified successfully.",
		"status":  "Success",
	})
}

// History handles GET /api/payments/history.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	payments, err := h.svc.GetUserPayments(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// Details handles GET /api/payments/{orderId}, scoped to the caller.
func (h *PaymentHandler) Details(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	payment, err := h.svc.GetPaymentDetails(r.Context(), p, chi.URLParam(r, "orderId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
