package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/filter"
)

// Filter returns a copy of the current filter state.
func (e *Engine) Filter() domain.FilterState {
	st := domain.FilterState{Search: e.filter.Search, Category: e.filter.Category, Quick: make(map[domain.QuickFilter]bool)}
	for k, v := range e.filter.Quick {
		st.Quick[k] = v
	}
	return st
}

// SearchInput records a keystroke. The search is applied once input has
// been quiet for the debounce delay; each call supersedes the last.
func (e *Engine) SearchInput(query string) {
	e.search.Trigger(func() { e.SetSearch(query) })
}

// SearchPending reports whether a debounced search has not been applied yet.
func (e *Engine) SearchPending() bool { return e.search.Pending() }

// CancelSearch drops a pending debounced search without applying it.
func (e *Engine) CancelSearch() {
	if e.search.Stop() {
		e.log.Debug("pending search cancelled")
	}
}

// SetSearch applies a search query immediately and returns to page 1.
// Surrounding whitespace is ignored; a blank query clears the search.
func (e *Engine) SetSearch(query string) {
	e.search.Stop()
	query = strings.TrimSpace(query)
	if e.filter.Search == query {
		return
	}
	e.filter.Search = query
	e.pages.Reset()
	e.log.Debug("search %q", query)
}

// SetCategory selects "all", "quick", or a category/tag value.
func (e *Engine) SetCategory(c string) {
	if c == "" {
		c = domain.CategoryAll
	}
	e.filter.Category = c
	e.pages.Reset()
	e.log.Debug("category %q", c)
}

// ToggleQuickFilter flips a quick filter and returns its new state.
func (e *Engine) ToggleQuickFilter(q domain.QuickFilter) (bool, error) {
	if !q.Valid() {
		return false, fmt.Errorf("quick filter %q: %w", q, domain.ErrNotFound)
	}
	e.filter.Quick[q] = !e.filter.Quick[q]
	e.pages.Reset()
	return e.filter.Quick[q], nil
}

// ResetFilters restores the default filter state.
func (e *Engine) ResetFilters() {
	e.search.Stop()
	e.filter = domain.NewFilterState()
	e.pages.Reset()
}

// Visible returns every recipe that passes the filters.
func (e *Engine) Visible() []domain.Recipe {
	return filter.Visible(e.recipes, e.filter)
}

// Page returns the revealed prefix of Visible.
func (e *Engine) Page() []domain.Recipe {
	return filter.Window(e.pages, e.Visible())
}

// PageNumber returns the current page, starting at 1.
func (e *Engine) PageNumber() int { return e.pages.Page() }

// SetPage jumps to page n.
func (e *Engine) SetPage(n int) { e.pages.SetPage(n) }

// LoadMore reveals the next page and reports whether anything was added.
func (e *Engine) LoadMore() bool {
	return e.pages.LoadMore(len(e.Visible()))
}

// Remaining returns how many filtered recipes are not revealed yet.
func (e *Engine) Remaining() int {
	return e.pages.Remaining(len(e.Visible()))
}

// --- Favorites ---

// ToggleFavorite adds or removes id and returns the new membership.
func (e *Engine) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	if _, err := e.Recipe(id); err != nil {
		return false, err
	}
	return e.favs.Toggle(ctx, id), nil
}

// IsFavorite reports whether id is a favorite.
func (e *Engine) IsFavorite(id int) bool { return e.favs.Contains(id) }

// FavoriteRecipes lists favorited recipes in collection order. Stale ids
// are skipped.
func (e *Engine) FavoriteRecipes() []domain.Recipe {
	out := []domain.Recipe{}
	for _, r := range e.recipes {
		if e.favs.Contains(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
