package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore keeps blobs as plain files under a root directory, the same
// layout the rendering layer serves statically (<root>/images/<slug>.<ext>).
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (d *DiskStore) Store(ctx context.Context, slug, ext string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyBlob
	}
	ref := objectKey(slug, ext)
	target := filepath.Join(d.root, filepath.FromSlash(ref))

	if _, err := os.Stat(target); err == nil {
		return "", ErrBlobExists
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat blob: %w", err)
	}

	// Stage in the target directory so the final publish is a same-fs
	// rename; readers never see a partial file.
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+slug+"-*")
	if err != nil {
		return "", fmt.Errorf("stage blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("sync blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("publish blob: %w", err)
	}
	return ref, nil
}

// Open reads back the bytes behind a reference.
func (d *DiskStore) Open(ref string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(ref)))
}

// Root is where the static file layer should point for /images.
func (d *DiskStore) Root() string { return d.root }
