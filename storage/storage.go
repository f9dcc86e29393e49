package storage

import (
	"context"
	"errors"
)

var (
	// ErrEmptyBlob rejects a zero-length upload.
	ErrEmptyBlob = errors.New("storage: empty blob")
	// ErrBlobExists rejects a write to an already-occupied reference.
	// Slugs are meant to be fresh; an occupied key is a collision.
	ErrBlobExists = errors.New("storage: reference already exists")
)

// BlobStore persists uploaded image bytes under a deterministic reference
// derived from the meal's slug. Store is all-or-nothing: on error nothing is
// visible at the reference.
type BlobStore interface {
	Store(ctx context.Context, slug, ext string, data []byte) (ref string, err error)
}

func objectKey(slug, ext string) string {
	return "images/" + slug + "." + ext
}
