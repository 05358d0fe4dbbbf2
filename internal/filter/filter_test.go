package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

func fixtures() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Title: "Avocado Toast", Categories: []string{"breakfast", "quick"}, Tags: []string{"vegan"},
			TimeMinutes: 10, Difficulty: domain.DifficultyEasy,
			Ingredients: []domain.Ingredient{{Name: "Ripe avocado"}, {Name: "Bread"}}},
		{ID: 2, Title: "Caesar Salad", Categories: []string{"lunch"}, Tags: []string{"salad"},
			TimeMinutes: 25, Difficulty: domain.DifficultyMedium,
			Ingredients: []domain.Ingredient{{Name: "Chicken breast"}, {Name: "Romaine"}}},
		{ID: 3, Title: "Cookies", Categories: []string{"dessert"}, Tags: []string{"sweet"},
			TimeMinutes: 45, Difficulty: domain.DifficultyEasy,
			Ingredients: []domain.Ingredient{{Name: "Butter"}, {Name: "Brown sugar"}}},
		{ID: 4, Title: "Buddha Bowl", Categories: []string{"lunch", "dinner"}, Tags: []string{"vegan"},
			TimeMinutes: 30, Difficulty: domain.DifficultyMedium,
			Ingredients: []domain.Ingredient{{Name: "Quinoa"}, {Name: "Lemon juice"}}},
		{ID: 5, Title: "Smoothie Bowl", Categories: []string{"breakfast"}, Tags: []string{"vegan", "quick"},
			TimeMinutes: 8, Difficulty: domain.DifficultyEasy,
			Ingredients: []domain.Ingredient{{Name: "Banana"}}},
		{ID: 6, Title: "Beef Stir Fry", Categories: []string{"dinner"}, Tags: []string{"protein"},
			TimeMinutes: 30, Difficulty: domain.DifficultyHard,
			Ingredients: []domain.Ingredient{{Name: "Beef strips"}, {Name: "Garlic"}}},
	}
}

func ids(rs []domain.Recipe) []int {
	out := []int{}
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func state(search, category string, quick ...domain.QuickFilter) domain.FilterState {
	st := domain.NewFilterState()
	st.Search = search
	if category != "" {
		st.Category = category
	}
	for _, q := range quick {
		st.Quick[q] = true
	}
	return st
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name string
		st   domain.FilterState
		want []int
	}{
		{"everything", state("", domain.CategoryAll), []int{1, 2, 3, 4, 5, 6}},
		{"zero value state", domain.FilterState{}, []int{1, 2, 3, 4, 5, 6}},
		{"title search is case-insensitive", state("BOWL", ""), []int{4, 5}},
		{"ingredient search", state("garlic", ""), []int{6}},
		{"partial ingredient", state("sugar", ""), []int{3}},
		{"no match", state("tofu", ""), []int{}},
		{"quick category is inclusive", state("", domain.CategoryQuick), []int{1, 2, 4, 5, 6}},
		{"quick-time toggle is strict", state("", domain.CategoryAll, domain.QuickTime), []int{1, 2, 5}},
		{"quick category then toggle", state("", domain.CategoryQuick, domain.QuickTime), []int{1, 2, 5}},
		{"category matches categories", state("", "lunch"), []int{2, 4}},
		{"category matches tags", state("", "salad"), []int{2}},
		{"easy", state("", "", domain.QuickEasy), []int{1, 3, 5}},
		{"vegan", state("", "", domain.QuickVegan), []int{1, 4, 5}},
		{"all passes", state("bowl", "breakfast", domain.QuickEasy, domain.QuickVegan, domain.QuickTime), []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Visible(fixtures(), tt.st))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("visible ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisibleDoesNotModifyInput(t *testing.T) {
	all := fixtures()
	Visible(all, state("", "", domain.QuickVegan))
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, ids(all)); diff != "" {
		t.Fatalf("input reordered (-want +got):\n%s", diff)
	}
}

func TestPaginator(t *testing.T) {
	items := make([]int, 14)
	for i := range items {
		items[i] = i
	}

	p := NewPaginator(0)
	if p.Size() != DefaultPageSize {
		t.Fatalf("expected default size %d, got %d", DefaultPageSize, p.Size())
	}

	if got := len(Window(p, items)); got != 6 {
		t.Fatalf("page 1 shows %d, want 6", got)
	}
	if got := p.Remaining(len(items)); got != 8 {
		t.Fatalf("remaining %d, want 8", got)
	}

	// Same page twice yields the same prefix.
	first := Window(p, items)
	if diff := cmp.Diff(first, Window(p, items)); diff != "" {
		t.Fatalf("window not stable (-first +second):\n%s", diff)
	}

	if !p.LoadMore(len(items)) || len(Window(p, items)) != 12 {
		t.Fatalf("page 2 should show 12, got %d", len(Window(p, items)))
	}
	if !p.LoadMore(len(items)) || len(Window(p, items)) != 14 {
		t.Fatalf("page 3 should show all 14, got %d", len(Window(p, items)))
	}
	if p.LoadMore(len(items)) {
		t.Fatal("LoadMore past the end should report false")
	}
	if p.Page() != 3 || p.Remaining(len(items)) != 0 {
		t.Fatalf("expected page 3 with nothing remaining, got page %d remaining %d", p.Page(), p.Remaining(len(items)))
	}

	p.Reset()
	if p.Page() != 1 {
		t.Fatalf("reset left page %d", p.Page())
	}
	p.SetPage(-2)
	if p.Page() != 1 {
		t.Fatalf("SetPage clamps to 1, got %d", p.Page())
	}
}
