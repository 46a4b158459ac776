package storage

import (
	"context"
	"os"
	"path/filepath"
)

// BlobStore persists uploaded documents at category-addressed slots and
// returns the locator the rest of the system stores and serves.
type BlobStore interface {
	Save(ctx context.Context, slot string, data []byte) (string, error)
}

// DiskStore writes blobs under a root directory on the service host. The
// HTTP layer serves the same tree back under publicBase.
type DiskStore struct {
	root       string
	publicBase string
}

func NewDiskStore(root, publicBase string) *DiskStore {
	return &DiskStore{root: root, publicBase: publicBase}
}

func (s *DiskStore) Save(_ context.Context, slot string, data []byte) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(slot))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.publicBase + "/" + slot, nil
}
