package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/quantity"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// ScaledIngredient is an ingredient line at the current servings.
type ScaledIngredient struct {
	Name     string
	Quantity float64
	Unit     string
	Display  string // formatted quantity and unit, e.g. "8 tbsp"
}

// MaxServings returns the stepper's upper bound.
func (e *Engine) MaxServings() int { return e.maxServings }

// Servings returns the chosen servings for id, or its base servings when
// there is no override.
func (e *Engine) Servings(id int) (int, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return 0, err
	}
	if n, ok := e.servings[id]; ok {
		return n, nil
	}
	return r.ServingsBase, nil
}

// SetServings stores an override for id.
func (e *Engine) SetServings(ctx context.Context, id, n int) error {
	if _, err := e.Recipe(id); err != nil {
		return err
	}
	if n < 1 || n > e.maxServings {
		return fmt.Errorf("%d not in 1..%d: %w", n, e.maxServings, domain.ErrInvalidServings)
	}
	e.servings[id] = n
	e.store.Set(ctx, storage.KeyServings, e.encodeServings())
	return nil
}

// AdjustServings steps the servings of id by delta, clamped to the
// allowed range, and returns the result.
func (e *Engine) AdjustServings(ctx context.Context, id, delta int) (int, error) {
	cur, err := e.Servings(id)
	if err != nil {
		return 0, err
	}
	next := min(max(cur+delta, 1), e.maxServings)
	if next == cur {
		return cur, nil
	}
	return next, e.SetServings(ctx, id, next)
}

// ScaledIngredients returns the ingredient lines of id at its current
// servings.
func (e *Engine) ScaledIngredients(id int) ([]ScaledIngredient, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return nil, err
	}
	n, _ := e.Servings(id)

	out := make([]ScaledIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		q := quantity.Scale(ing.QuantityBase, r.ServingsBase, n)
		out = append(out, ScaledIngredient{
			Name:     ing.Name,
			Quantity: q,
			Unit:     ing.Unit,
			Display:  quantity.Format(q, ing.Unit),
		})
	}
	return out, nil
}
