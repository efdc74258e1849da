// Package gateway talks to the Razorpay orders API and verifies the
// signatures Razorpay attaches to payment callbacks.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewRazorpayClientWithBaseURL is used by tests to point the client at a
// local server.
func NewRazorpayClientWithBaseURL(keyID, keySecret, baseURL string) *RazorpayClient {
	c := NewRazorpayClient(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

// KeyID returns the public key id, which the frontend needs to open the
// checkout widget.
func (c *RazorpayClient) KeyID() string {
	return c.keyID
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID string `json:"id"`
}

// CreateOrder mints an order at the gateway and returns its order id.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	body, err := json.Marshal(orderRequest{Amount: amount, Currency: currency, Receipt: receipt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("razorpay order creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("razorpay order creation returned %d: %s", resp.StatusCode, msg)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("decoding razorpay order response: %w", err)
	}
	if order.ID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return order.ID, nil
}

// VerifySignature checks a callback signature. Razorpay signs
// "<order_id>|<payment_id>" with the key secret using HMAC-SHA256.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
