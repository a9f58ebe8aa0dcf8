package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes blobs under an images directory served statically by the
// API itself.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: baseURL,
	}, nil
}

func (s *LocalStore) Save(
	_ context.Context,
	name string,
	data []byte,
	_ string,
) (string, error) {

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return fmt.Sprintf("%s/images/%s", s.baseURL, filepath.Base(name)), nil
}

var _ ImageStore = (*LocalStore)(nil)
