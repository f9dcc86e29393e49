package services

import (
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"backend/models"
)

const mealCacheSize = 256

// MealReader is the query surface the rendering layer consumes.
type MealReader interface {
	List() ([]models.Meal, error)
	GetBySlug(slug string) (*models.Meal, error)
}

// ListingCache fronts the record store with a listing snapshot plus an LRU
// of per-slug reads. Both are dropped when the listing-changed signal fires;
// a full reload is cheaper than diffing what changed.
type ListingCache struct {
	store *MealService

	mu      sync.RWMutex
	loaded  bool
	listing []models.Meal

	meals *lru.Cache // slug → *models.Meal
}

func NewListingCache(store *MealService, bus *InvalidationBus) *ListingCache {
	cache, _ := lru.New(mealCacheSize)
	c := &ListingCache{store: store, meals: cache}
	bus.Subscribe(c.Invalidate)
	return c
}

// List returns the cached listing. Callers get their own copy; the snapshot
// itself only changes through Invalidate.
func (c *ListingCache) List() ([]models.Meal, error) {
	c.mu.RLock()
	if c.loaded {
		cached := slices.Clone(c.listing)
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	meals, err := c.store.ListAll()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.listing = meals
	c.loaded = true
	c.mu.Unlock()
	return slices.Clone(meals), nil
}

func (c *ListingCache) GetBySlug(slug string) (*models.Meal, error) {
	if v, ok := c.meals.Get(slug); ok {
		return v.(*models.Meal), nil
	}
	meal, err := c.store.GetBySlug(slug)
	if err != nil {
		// Not-found is not cached: the slug may be seconds from existing.
		return nil, err
	}
	c.meals.Add(slug, meal)
	return meal, nil
}

// Invalidate clears all cached state.
func (c *ListingCache) Invalidate() {
	c.mu.Lock()
	c.listing = nil
	c.loaded = false
	c.mu.Unlock()
	c.meals.Purge()
}
