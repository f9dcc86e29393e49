package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

var (
	// ErrValidation covers every user-correctable input problem.
	ErrValidation = errors.New("invalid submission")
	// ErrDuplicateSlug means the identity is already taken; the caller
	// reports a conflict, never overwrites.
	ErrDuplicateSlug = errors.New("slug already taken")
	// ErrNotFound is the normal answer for an absent slug.
	ErrNotFound = errors.New("meal not found")
)

// MealService is the relational store of shared meals.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// Insert writes one new row. A second meal with the same slug surfaces as
// ErrDuplicateSlug (unique-constraint translation); either way the write is
// all-or-nothing.
func (s *MealService) Insert(meal *models.Meal) error {
	if err := validateMeal(meal); err != nil {
		return err
	}
	if err := s.db.Create(meal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, meal.Slug)
		}
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

func (s *MealService) GetBySlug(slug string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.First(&meal, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return &meal, nil
}

// ListAll returns every meal, oldest first. Slug breaks created_at ties so
// the order is stable across calls.
func (s *MealService) ListAll() ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.Order("created_at, slug").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func validateMeal(m *models.Meal) error {
	for field, v := range map[string]string{
		"slug":          m.Slug,
		"title":         m.Title,
		"creator":       m.Creator,
		"creator_email": m.CreatorEmail,
		"summary":       m.Summary,
		"instructions":  m.Instructions,
		"image":         m.Image,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	return nil
}
