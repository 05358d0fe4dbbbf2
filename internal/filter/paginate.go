package filter

// DefaultPageSize is how many recipes each "load more" reveals.
const DefaultPageSize = 6

// Paginator reveals a growing prefix of a list: page N shows the first
// size*N items.
type Paginator struct {
	size int
	page int
}

// NewPaginator creates a paginator on page 1. A size below 1 falls back to
// DefaultPageSize.
func NewPaginator(size int) *Paginator {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Paginator{size: size, page: 1}
}

// Page returns the current page number, starting at 1.
func (p *Paginator) Page() int { return p.page }

// Size returns the page size.
func (p *Paginator) Size() int { return p.size }

// Limit is the number of items currently revealed.
func (p *Paginator) Limit() int { return p.size * p.page }

// Reset goes back to page 1.
func (p *Paginator) Reset() { p.page = 1 }

// SetPage jumps to page n (minimum 1).
func (p *Paginator) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	p.page = n
}

// LoadMore advances one page if total has unrevealed items and reports
// whether it did.
func (p *Paginator) LoadMore(total int) bool {
	if p.Limit() >= total {
		return false
	}
	p.page++
	return true
}

// Remaining returns how many of total items are still hidden.
func (p *Paginator) Remaining(total int) int {
	return max(total-p.Limit(), 0)
}

// Window returns the revealed prefix of items.
func Window[T any](p *Paginator, items []T) []T {
	return items[:min(len(items), p.Limit())]
}
