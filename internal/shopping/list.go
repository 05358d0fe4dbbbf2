// Package shopping implements the aggregated shopping list. Additions of
// the same ingredient merge into one line when the names match
// case-insensitively and the units match exactly.
package shopping

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/quantity"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// Option configures the list.
type Option func(*List)

// WithIDGenerator replaces the item ID generator (UUIDs by default).
func WithIDGenerator(gen func() string) Option {
	return func(l *List) {
		l.newID = gen
	}
}

// List is the ordered shopping list. Insertion order is display order.
// Every mutation writes the whole list back through the StateWriter.
// Not safe for concurrent use.
type List struct {
	items []domain.ShoppingItem
	out   domain.StateWriter
	log   *logger.Logger
	newID func() string
}

// New creates a list holding the given items, typically restored from the
// persisted slot.
func New(items []domain.ShoppingItem, out domain.StateWriter, log *logger.Logger, opts ...Option) *List {
	l := &List{
		items: append([]domain.ShoppingItem(nil), items...),
		out:   out,
		log:   log,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func normalize(name string) string {
	return cases.Fold().String(name)
}

// add merges or appends without persisting. Returns true when an existing
// line absorbed the quantity.
func (l *List) add(name string, qty float64, unit string) bool {
	key := normalize(name)
	for i := range l.items {
		it := &l.items[i]
		if it.Unit == unit && normalize(it.Name) == key {
			it.Quantity += qty
			l.log.Debug("merged %v %s into %q (now %v)", qty, unit, it.Name, it.Quantity)
			return true
		}
	}
	l.items = append(l.items, domain.ShoppingItem{
		ID:       l.newID(),
		Name:     name,
		Quantity: qty,
		Unit:     unit,
	})
	l.log.Debug("added %q: %v %s", name, qty, unit)
	return false
}

func (l *List) persist(ctx context.Context) {
	l.out.Set(ctx, storage.KeyShoppingList, l.Items())
}

// AddIngredient adds qty of the ingredient, merging with an existing line
// of the same name and unit.
func (l *List) AddIngredient(ctx context.Context, name string, qty float64, unit string) {
	l.add(name, qty, unit)
	l.persist(ctx)
}

// AddRecipe adds every ingredient of r scaled to servings and writes the
// list back once. Returns the number of ingredient lines added.
func (l *List) AddRecipe(ctx context.Context, r *domain.Recipe, servings int) int {
	merged := 0
	for _, ing := range r.Ingredients {
		q := quantity.Scale(ing.QuantityBase, r.ServingsBase, servings)
		if l.add(ing.Name, q, ing.Unit) {
			merged++
		}
	}
	l.persist(ctx)
	l.log.Info("added %q for %d servings (%d lines, %d merged)", r.Title, servings, len(r.Ingredients), merged)
	return len(r.Ingredients)
}

// Toggle flips the checked flag of the item with the given ID. Unknown IDs
// are ignored and reported as false.
func (l *List) Toggle(ctx context.Context, id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Checked = !l.items[i].Checked
			l.persist(ctx)
			return true
		}
	}
	l.log.Debug("toggle: no item %s", id)
	return false
}

// ClearChecked removes every checked item, keeping the order of the rest.
// Returns the number removed.
func (l *List) ClearChecked(ctx context.Context) int {
	kept := l.items[:0]
	for _, it := range l.items {
		if !it.Checked {
			kept = append(kept, it)
		}
	}
	removed := len(l.items) - len(kept)
	clear(l.items[len(kept):])
	l.items = kept
	l.persist(ctx)
	return removed
}

// ClearAll empties the list.
func (l *List) ClearAll(ctx context.Context) {
	l.items = nil
	l.persist(ctx)
}

// Items returns a copy of the list in display order. Never nil.
func (l *List) Items() []domain.ShoppingItem {
	out := make([]domain.ShoppingItem, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the item at the 1-based display position.
func (l *List) At(pos int) (domain.ShoppingItem, bool) {
	if pos < 1 || pos > len(l.items) {
		return domain.ShoppingItem{}, false
	}
	return l.items[pos-1], true
}

// Counts returns how many items are checked and how many there are.
func (l *List) Counts() (checked, total int) {
	for _, it := range l.items {
		if it.Checked {
			checked++
		}
	}
	return checked, len(l.items)
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }
