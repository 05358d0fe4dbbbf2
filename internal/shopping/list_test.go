package shopping

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// countingWriter records every write.
type countingWriter struct {
	writes int
	last   any
}

func (w *countingWriter) Set(_ context.Context, _ string, v any) {
	w.writes++
	w.last = v
}

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	})
}

func newList(t *testing.T, items ...domain.ShoppingItem) (*List, *countingWriter) {
	t.Helper()
	w := &countingWriter{}
	return New(items, w, logger.New(logger.LevelOff, nil), sequentialIDs()), w
}

func TestAddIngredientMerges(t *testing.T) {
	ctx := context.Background()
	l, w := newList(t)

	l.AddIngredient(ctx, "Eggs", 1, "pcs")
	l.AddIngredient(ctx, "eggs", 2, "pcs")

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Eggs", items[0].Name, "first spelling wins")
	assert.Equal(t, 3.0, items[0].Quantity)
	assert.False(t, items[0].Checked)
	assert.Equal(t, 2, w.writes)
}

func TestAddIngredientKeepsUnitsApart(t *testing.T) {
	ctx := context.Background()
	l, _ := newList(t)

	l.AddIngredient(ctx, "Butter", 1, "cup")
	l.AddIngredient(ctx, "BUTTER", 2, "tbsp")
	l.AddIngredient(ctx, "Butter", 1, "cups")

	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"cup", "tbsp", "cups"}, []string{items[0].Unit, items[1].Unit, items[2].Unit})
	assert.Equal(t, []string{"item-1", "item-2", "item-3"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestAddRecipePersistsOnce(t *testing.T) {
	ctx := context.Background()
	l, w := newList(t)

	r := &domain.Recipe{
		ID:           9,
		Title:        "Omelette",
		ServingsBase: 2,
		Ingredients: []domain.Ingredient{
			{Name: "Eggs", Unit: "pcs", QuantityBase: 2},
			{Name: "Milk", Unit: "cup", QuantityBase: 0.25},
			{Name: "eggs", Unit: "pcs", QuantityBase: 1},
		},
	}

	n := l.AddRecipe(ctx, r, 4)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, w.writes)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.ShoppingItem{ID: "item-1", Name: "Eggs", Quantity: 6, Unit: "pcs"}, items[0])
	assert.Equal(t, domain.ShoppingItem{ID: "item-2", Name: "Milk", Quantity: 0.5, Unit: "cup"}, items[1])
	assert.Equal(t, items, w.last)
}

func TestAddRecipeScalesPieces(t *testing.T) {
	ctx := context.Background()
	l, _ := newList(t)

	r := &domain.Recipe{
		ID:           1,
		Title:        "Fried Eggs",
		ServingsBase: 2,
		Ingredients:  []domain.Ingredient{{Name: "Egg", Unit: domain.UnitPieces, QuantityBase: 2}},
	}
	l.AddRecipe(ctx, r, 4)

	item, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, "Egg", item.Name)
	assert.Equal(t, 4.0, item.Quantity)
	assert.Equal(t, domain.UnitPieces, item.Unit)
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	l, w := newList(t, domain.ShoppingItem{ID: "a", Name: "Salt", Quantity: 1, Unit: "pinch"})

	assert.True(t, l.Toggle(ctx, "a"))
	item, _ := l.At(1)
	assert.True(t, item.Checked)

	assert.True(t, l.Toggle(ctx, "a"))
	item, _ = l.At(1)
	assert.False(t, item.Checked)

	writes := w.writes
	assert.False(t, l.Toggle(ctx, "missing"))
	assert.Equal(t, writes, w.writes, "unknown id must not write")
}

func TestClearChecked(t *testing.T) {
	ctx := context.Background()
	l, _ := newList(t,
		domain.ShoppingItem{ID: "A", Name: "A", Quantity: 1, Unit: "pcs", Checked: true},
		domain.ShoppingItem{ID: "B", Name: "B", Quantity: 1, Unit: "pcs"},
		domain.ShoppingItem{ID: "C", Name: "C", Quantity: 1, Unit: "pcs", Checked: true},
		domain.ShoppingItem{ID: "D", Name: "D", Quantity: 1, Unit: "pcs"},
	)

	checked, total := l.Counts()
	assert.Equal(t, 2, checked)
	assert.Equal(t, 4, total)

	assert.Equal(t, 2, l.ClearChecked(ctx))
	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].ID)
	assert.Equal(t, "D", items[1].ID)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	l, w := newList(t, domain.ShoppingItem{ID: "a", Name: "Salt", Quantity: 1, Unit: "pinch"})

	l.ClearAll(ctx)
	assert.Equal(t, 0, l.Len())
	assert.NotNil(t, l.Items())
	assert.Equal(t, []domain.ShoppingItem{}, w.last)
}

func TestListRoundTripsThroughStore(t *testing.T) {
	ctx := context.Background()
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewStore(storage.NewMemoryBackend(log), log)

	l := New(nil, store, log)
	l.AddIngredient(ctx, "Flour", 2.25, "cups")
	l.AddIngredient(ctx, "Sugar", 0.5, "cup")
	require.True(t, l.Toggle(ctx, l.Items()[1].ID))

	restored := New(storage.Get(ctx, store, storage.KeyShoppingList, []domain.ShoppingItem{}), store, log)
	assert.Equal(t, l.Items(), restored.Items())
	assert.NotEmpty(t, restored.Items()[0].ID)
}
