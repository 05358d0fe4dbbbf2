package display

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

func setupEngine(t *testing.T) (*engine.Engine, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	eng := engine.New(recipe.NewMemorySource(log), storage.NewStore(storage.NewMemoryBackend(log), log), log)
	ctx := context.Background()
	if err := eng.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(eng.Close)
	return eng, ctx
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{4.5, "★★★★⯪"},
		{4.4, "★★★★☆"},
		{4.9, "★★★★⯪"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
	}
	for _, tt := range tests {
		if got := Stars(tt.rating); got != tt.want {
			t.Fatalf("Stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestMeta(t *testing.T) {
	r := &domain.Recipe{TimeMinutes: 25, Difficulty: domain.DifficultyMedium}
	if got := Meta(r); got != "25min • medium" {
		t.Fatalf("Meta = %q", got)
	}
}

func TestHomeLoadMore(t *testing.T) {
	eng, _ := setupEngine(t)

	out := Home(eng)
	if !strings.Contains(out, "Load More (2 remaining)") {
		t.Fatalf("expected load more affordance:\n%s", out)
	}
	if strings.Contains(out, "Chicken Alfredo") {
		t.Fatal("page 1 should not show the eighth recipe")
	}

	eng.LoadMore()
	out = Home(eng)
	if strings.Contains(out, "Load More") || !strings.Contains(out, "Chicken Alfredo") {
		t.Fatalf("page 2 should show everything:\n%s", out)
	}

	eng.SetSearch("no such dish")
	if out := Home(eng); !strings.Contains(out, "No recipes found") {
		t.Fatalf("expected empty state:\n%s", out)
	}
}

func TestShoppingListView(t *testing.T) {
	eng, ctx := setupEngine(t)

	if out := ShoppingList(eng); !strings.Contains(out, "Shopping List Empty") {
		t.Fatalf("expected empty state:\n%s", out)
	}

	eng.AddToList(ctx, 1)
	eng.CheckAt(ctx, 1)
	out := ShoppingList(eng)
	if !strings.Contains(out, "1 of 6 items") {
		t.Fatalf("expected progress line:\n%s", out)
	}
	if !strings.Contains(out, "1 pc") {
		t.Fatalf("expected formatted quantity:\n%s", out)
	}
}

func TestDetailView(t *testing.T) {
	eng, ctx := setupEngine(t)

	// Caesar salad serves 4; at 2, half a cup of parmesan becomes 1/4 cup.
	if err := eng.SetServings(ctx, 2, 2); err != nil {
		t.Fatalf("servings: %v", err)
	}
	out, err := Detail(eng, 2)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	for _, want := range []string{"Classic Chicken Caesar Salad", "25min • medium", "450 cal", "4 tbsp", "Instructions", "[-] 2 [+]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail missing %q:\n%s", want, out)
		}
	}

	if _, err := Detail(eng, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRenderFollowsRoute(t *testing.T) {
	eng, ctx := setupEngine(t)

	eng.SelectTab(ctx, domain.TabProfile)
	if out := Render(eng); !strings.Contains(out, "Coming soon...") || !strings.Contains(out, "[Profile]") {
		t.Fatalf("profile view:\n%s", out)
	}

	eng.SelectTab(ctx, domain.TabFavorites)
	if out := Render(eng); !strings.Contains(out, "No favorites yet") {
		t.Fatalf("favorites view:\n%s", out)
	}

	eng.OpenRecipe(ctx, 3)
	if out := Render(eng); !strings.Contains(out, "Chocolate Chip Cookies") || !strings.Contains(out, "[Favorites]") {
		t.Fatalf("detail view:\n%s", out)
	}
}

func TestApply(t *testing.T) {
	eng, ctx := setupEngine(t)

	run := func(typ domain.IntentType, payload string) (string, error) {
		return apply(ctx, eng, &domain.Intent{Type: typ, Payload: payload})
	}

	if _, err := run(domain.IntentServingsUp, ""); !errors.Is(err, domain.ErrNoDetailOpen) {
		t.Fatalf("servings without detail: %v", err)
	}
	if _, err := run(domain.IntentOpenRecipe, "5"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := run(domain.IntentServingsUp, ""); err != nil {
		t.Fatalf("servings up: %v", err)
	}
	if n, _ := eng.Servings(5); n != 2 {
		t.Fatalf("servings = %d, want 2", n)
	}

	// The list behind the detail is not reachable.
	if _, err := run(domain.IntentLoadMore, ""); !errors.Is(err, errDetailOpen) {
		t.Fatalf("load more behind detail: %v", err)
	}

	if _, err := run(domain.IntentAddToList, ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if status, _ := run(domain.IntentToggleFavorite, ""); status != "Added to favorites" {
		t.Fatalf("favorite status %q", status)
	}
	if _, err := run(domain.IntentCloseDetail, ""); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := run(domain.IntentCheckItem, "1"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if status, _ := run(domain.IntentClearChecked, ""); status != "Cleared 1 checked items" {
		t.Fatalf("clear status %q", status)
	}
	if status, _ := run(domain.IntentToggleFilter, "vegan"); status != "vegan on" {
		t.Fatalf("filter status %q", status)
	}
	if _, err := run(domain.IntentUnknown, "dance"); !errors.Is(err, domain.ErrUnknownCommand) {
		t.Fatalf("unknown: %v", err)
	}
	if _, err := run(domain.IntentQuit, ""); !errors.Is(err, errQuit) {
		t.Fatalf("quit: %v", err)
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		want    []string
		wantLen int
	}{
		{"wide", 10, []string{"   ab", "   abcd", "", "   tag"}, 4},
		{"narrow", 3, []string{"recipebox", "tag"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := banner("ab\nabcd\n", "tag", tt.width)
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if len(lines) != tt.wantLen {
				t.Fatalf("got %d lines: %q", len(lines), out)
			}
			for i, prefix := range tt.want {
				if !strings.HasPrefix(lines[i], prefix) {
					t.Fatalf("line %d = %q, want prefix %q", i, lines[i], prefix)
				}
			}
		})
	}
}

func TestTagline(t *testing.T) {
	if got := Tagline(1); !strings.HasPrefix(got, "1 recipe ·") {
		t.Fatalf("Tagline(1) = %q", got)
	}
	if got := Tagline(8); !strings.HasPrefix(got, "8 recipes ·") {
		t.Fatalf("Tagline(8) = %q", got)
	}
}

func TestEscAbandonsLiveSearch(t *testing.T) {
	eng, ctx := setupEngine(t)
	log := logger.New(logger.LevelOff, nil)
	m := model{ctx: ctx, ui: &UI{log: log}, eng: eng, log: log, input: textinput.New()}
	m.input.Focus()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = next.(model)
	if !m.searching {
		t.Fatal("expected search mode")
	}
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(model)
	if !eng.SearchPending() {
		t.Fatal("typing should schedule a search")
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if m.searching || eng.SearchPending() {
		t.Fatalf("esc left searching=%v pending=%v", m.searching, eng.SearchPending())
	}
	if eng.Filter().Search != "" {
		t.Fatalf("abandoned query applied: %q", eng.Filter().Search)
	}
}
