package services

import "context"

// Notifier delivers outbound email. The concrete implementation lives in
// internal/notify.
type Notifier interface {
	Send(to, subject, htmlBody string) error
	SendWithAttachment(to, subject, body string, attachment []byte, filename string) error
}

// BlobStore uploads raw image bytes and returns a public URL. The concrete
// implementation lives in internal/storage.
type BlobStore interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// PaymentGateway mints orders at the external gateway and verifies the
// signatures it attaches to payment callbacks. The concrete implementation
// lives in internal/gateway.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}
