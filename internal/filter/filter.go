// Package filter derives the visible recipe subset from the search query,
// category selector, and quick filters, and pages through it.
package filter

import (
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Duration thresholds. The "quick" category is inclusive while the
// quick-time toggle is strict; both are kept as authored.
const (
	QuickCategoryMaxMinutes = 30
	QuickTimeBelowMinutes   = 30
)

// Visible narrows recipes by search, then category, then each active quick
// filter. Collection order is preserved. The input is not modified.
func Visible(recipes []domain.Recipe, st domain.FilterState) []domain.Recipe {
	out := append([]domain.Recipe(nil), recipes...)

	if q := strings.ToLower(st.Search); q != "" {
		out = keep(out, func(r *domain.Recipe) bool { return matchesSearch(r, q) })
	}

	switch st.Category {
	case "", domain.CategoryAll:
	case domain.CategoryQuick:
		out = keep(out, func(r *domain.Recipe) bool { return r.TimeMinutes <= QuickCategoryMaxMinutes })
	default:
		c := st.Category
		out = keep(out, func(r *domain.Recipe) bool { return r.HasCategory(c) || r.HasTag(c) })
	}

	if st.Quick[domain.QuickTime] {
		out = keep(out, func(r *domain.Recipe) bool { return r.TimeMinutes < QuickTimeBelowMinutes })
	}
	if st.Quick[domain.QuickEasy] {
		out = keep(out, func(r *domain.Recipe) bool { return r.Difficulty == domain.DifficultyEasy })
	}
	if st.Quick[domain.QuickVegan] {
		out = keep(out, func(r *domain.Recipe) bool { return r.HasTag("vegan") })
	}

	return out
}

// matchesSearch checks the title and ingredient names against an already
// lowercased query.
func matchesSearch(r *domain.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

func keep(rs []domain.Recipe, pred func(*domain.Recipe) bool) []domain.Recipe {
	out := rs[:0]
	for i := range rs {
		if pred(&rs[i]) {
			out = append(out, rs[i])
		}
	}
	return out
}
