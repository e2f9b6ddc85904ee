// Package storage implements image persistence on the local filesystem.
// Files land in a flat directory that the router also serves statically
// under /images.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalImageStore writes uploads into dir and reports URLs under /images.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

// Save writes the bytes under a fresh uuid name. The directory is created
// lazily so the store constructor stays infallible.
func (s *LocalImageStore) Save(_ context.Context, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("image dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return "/images/" + name, nil
}
