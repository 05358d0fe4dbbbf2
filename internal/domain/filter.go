package domain

// Category selectors with special meaning. Any other selector value is
// matched against a recipe's categories and tags.
const (
	CategoryAll   = "all"
	CategoryQuick = "quick"
)

// QuickFilter names an independently toggleable narrowing condition.
type QuickFilter string

const (
	QuickTime  QuickFilter = "quick-time"
	QuickEasy  QuickFilter = "easy"
	QuickVegan QuickFilter = "vegan"
)

// QuickFilters lists every known quick filter in display order.
func QuickFilters() []QuickFilter {
	return []QuickFilter{QuickTime, QuickEasy, QuickVegan}
}

// Valid reports whether q is a known quick filter.
func (q QuickFilter) Valid() bool {
	switch q {
	case QuickTime, QuickEasy, QuickVegan:
		return true
	default:
		return false
	}
}

// FilterState is the transient search/category/quick-filter selection.
type FilterState struct {
	Search   string
	Category string
	Quick    map[QuickFilter]bool
}

// NewFilterState returns the default state: no search, "all" category,
// every quick filter off.
func NewFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Quick:    make(map[QuickFilter]bool),
	}
}
