package storage

import (
	"context"
	"errors"
)

// Unavailable is the blob store used when Cloudinary credentials are not
// configured. Every upload fails with a clear error instead of a panic.
type Unavailable struct{}

func (Unavailable) Upload(ctx context.Context, data []byte) (string, error) {
	return "", errors.New("image storage is not configured")
}
