// Package favorites tracks the set of favorited recipe IDs.
package favorites

import (
	"context"
	"slices"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// Set is an insertion-ordered set of recipe IDs, persisted on every toggle.
type Set struct {
	ids []int
	out domain.StateWriter
	log *logger.Logger
}

// New creates a set from persisted IDs, dropping duplicates.
func New(ids []int, out domain.StateWriter, log *logger.Logger) *Set {
	s := &Set{out: out, log: log}
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle adds id if absent and removes it if present. Returns the new
// membership.
func (s *Set) Toggle(ctx context.Context, id int) bool {
	on := false
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	} else {
		s.ids = append(s.ids, id)
		on = true
	}
	s.out.Set(ctx, storage.KeyFavorites, s.IDs())
	s.log.Debug("favorite %d -> %v", id, on)
	return on
}

// Contains reports whether id is a favorite.
func (s *Set) Contains(id int) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the favorites in the order they were added. Never nil.
func (s *Set) IDs() []int {
	return append(make([]int, 0, len(s.ids)), s.ids...)
}

// Len returns the number of favorites.
func (s *Set) Len() int { return len(s.ids) }
