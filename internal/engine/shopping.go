package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// AddToList adds every ingredient of id, scaled to its current servings,
// to the shopping list. Returns the number of ingredient lines.
func (e *Engine) AddToList(ctx context.Context, id int) (int, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return 0, err
	}
	n, _ := e.Servings(id)
	added := e.list.AddRecipe(ctx, r, n)

	if e.notifier != nil {
		msg := fmt.Sprintf("Added %d ingredients from %s to your shopping list", added, r.Title)
		if err := e.notifier.Notify(ctx, msg); err != nil {
			e.log.Warn("notify: %v", err)
		}
	}
	return added, nil
}

// ShoppingItems returns the list in display order.
func (e *Engine) ShoppingItems() []domain.ShoppingItem { return e.list.Items() }

// ShoppingCounts returns how many items are checked and the total.
func (e *Engine) ShoppingCounts() (checked, total int) { return e.list.Counts() }

// ToggleItem flips the checked flag of an item. Unknown ids are a no-op.
func (e *Engine) ToggleItem(ctx context.Context, itemID string) bool {
	return e.list.Toggle(ctx, itemID)
}

// CheckAt toggles the item at the 1-based display position.
func (e *Engine) CheckAt(ctx context.Context, pos int) (domain.ShoppingItem, error) {
	it, ok := e.list.At(pos)
	if !ok {
		return domain.ShoppingItem{}, fmt.Errorf("item %d: %w", pos, domain.ErrNotFound)
	}
	e.list.Toggle(ctx, it.ID)
	it.Checked = !it.Checked
	return it, nil
}

// ClearChecked removes checked items and returns how many went.
func (e *Engine) ClearChecked(ctx context.Context) int { return e.list.ClearChecked(ctx) }

// ClearAll empties the shopping list.
func (e *Engine) ClearAll(ctx context.Context) { e.list.ClearAll(ctx) }
