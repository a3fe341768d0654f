package model

import (
	"context"
	"io"
)

// Archive keeps audit copies of exchanged files.
type Archive interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}
