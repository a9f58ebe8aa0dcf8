package storage

import "context"

// ImageStore accepts a named binary blob and returns a retrievable URL.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
