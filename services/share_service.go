package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"path/filepath"
	"strings"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// Submission is the untrusted form input, shaped and validated once at this
// boundary instead of being plucked field-by-field downstream.
type Submission struct {
	Title        string
	Creator      string
	CreatorEmail string
	Summary      string
	Instructions string
	ImageName    string // original upload filename; only the extension matters
	Image        []byte
}

// ShareService turns a submission into a durable meal: validate, derive the
// slug, sanitize the instructions, store the image, insert the row, then
// signal the listing.
type ShareService struct {
	meals     *MealService
	blobs     storage.BlobStore
	sanitizer *utils.Sanitizer
	bus       *InvalidationBus
}

func NewShareService(meals *MealService, blobs storage.BlobStore, bus *InvalidationBus) *ShareService {
	return &ShareService{
		meals:     meals,
		blobs:     blobs,
		sanitizer: utils.NewSanitizer(),
		bus:       bus,
	}
}

// Submit runs the whole pipeline and returns the new meal's slug.
//
// The image is durably stored before the row that references it, so a
// readable row never points at a missing blob. If the insert then loses a
// slug race, the blob written here is left orphaned — accepted: the unique
// constraint is the single arbiter of who wins, and compensating deletes
// would drag distributed rollback into a single-row pipeline.
func (s *ShareService) Submit(ctx context.Context, sub Submission) (string, error) {
	if err := sub.validate(); err != nil {
		return "", err
	}

	slug := utils.Slugify(sub.Title)
	if slug == "" {
		return "", fmt.Errorf("%w: title yields no usable slug", ErrValidation)
	}

	safeInstructions := s.sanitizer.Sanitize(sub.Instructions)
	if strings.TrimSpace(safeInstructions) == "" {
		return "", fmt.Errorf("%w: instructions are empty once markup is removed", ErrValidation)
	}

	ext := strings.TrimPrefix(filepath.Ext(sub.ImageName), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: image filename has no extension", ErrValidation)
	}

	ref, err := s.blobs.Store(ctx, slug, ext, sub.Image)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrEmptyBlob):
			return "", fmt.Errorf("%w: image is empty", ErrValidation)
		case errors.Is(err, storage.ErrBlobExists):
			return "", fmt.Errorf("%w: %s", ErrDuplicateSlug, slug)
		default:
			return "", err
		}
	}

	meal := &models.Meal{
		Slug:         slug,
		Title:        strings.TrimSpace(sub.Title),
		Creator:      sub.Creator,
		CreatorEmail: sub.CreatorEmail,
		Summary:      sub.Summary,
		Instructions: safeInstructions,
		Image:        ref,
	}
	if err := s.meals.Insert(meal); err != nil {
		return "", err
	}

	s.bus.Notify()
	return slug, nil
}

func (sub Submission) validate() error {
	for field, v := range map[string]string{
		"title":        sub.Title,
		"name":         sub.Creator,
		"email":        sub.CreatorEmail,
		"summary":      sub.Summary,
		"instructions": sub.Instructions,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	if len(sub.Image) == 0 {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	// Syntax only; deliverability is out of scope. Rejecting display-name
	// forms keeps the stored contact a bare address.
	addr, err := mail.ParseAddress(sub.CreatorEmail)
	if err != nil || addr.Address != sub.CreatorEmail {
		return fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	return nil
}
