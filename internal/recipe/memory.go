// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.RecipeSource = (*MemorySource)(nil)
	_ domain.RecipeSource = (*YAMLSource)(nil)
)

// collection is an ordered, id-indexed set of recipes. Order is the
// authoring order and is what every listing preserves.
type collection struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	byID    map[int]int
	log     *logger.Logger
}

func (c *collection) load(recipes []domain.Recipe) error {
	byID := make(map[int]int, len(recipes))
	for i, r := range recipes {
		if err := validate(&r); err != nil {
			return err
		}
		if _, dup := byID[r.ID]; dup {
			return fmt.Errorf("duplicate recipe id %d", r.ID)
		}
		byID[r.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipes = recipes
	c.byID = byID
	return nil
}

// List returns all recipes in collection order.
func (c *collection) List(ctx context.Context) ([]domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.log.Debug("listing all recipes, count=%d", len(c.recipes))
	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out, nil
}

// Get returns a recipe by ID.
func (c *collection) Get(ctx context.Context, id int) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		c.log.Debug("recipe not found: %d", id)
		return nil, domain.ErrNotFound
	}
	r := c.recipes[i]
	return &r, nil
}

func validate(r *domain.Recipe) error {
	switch {
	case r.Title == "":
		return fmt.Errorf("recipe %d: missing title", r.ID)
	case r.ServingsBase <= 0:
		return fmt.Errorf("recipe %d (%s): servings_base must be positive", r.ID, r.Title)
	case !r.Difficulty.Valid():
		return fmt.Errorf("recipe %d (%s): unknown difficulty %q", r.ID, r.Title, r.Difficulty)
	}
	for _, ing := range r.Ingredients {
		if ing.QuantityBase <= 0 {
			return fmt.Errorf("recipe %d (%s): ingredient %q needs a positive quantity", r.ID, r.Title, ing.Name)
		}
	}
	return nil
}

// MemorySource holds the built-in recipes. Safe for concurrent reads.
type MemorySource struct {
	collection
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{collection{log: log}}
	if err := src.load(builtin()); err != nil {
		// The built-in dataset is covered by tests.
		panic(err)
	}
	log.Debug("seeded %d recipes", len(src.recipes))
	return src
}

// NewMemorySourceFrom creates a source over the given recipes, in order.
func NewMemorySourceFrom(recipes []domain.Recipe, log *logger.Logger) (*MemorySource, error) {
	src := &MemorySource{collection{log: log}}
	if err := src.load(recipes); err != nil {
		return nil, err
	}
	return src, nil
}
