// Package pagination computes the page-number controls shown under paginated lists.
package pagination

import (
	"strconv"
	"strings"
)

// DefaultWindow is the number of page buttons rendered by the list views.
const DefaultWindow = 9

// Window returns the contiguous page numbers to render around current.
// The window is centred on current and shifted at either edge so that it
// always holds min(size, total) pages.
func Window(current, total, size int) []int {
	if total < 1 {
		total = 1
	}
	if size < 1 {
		size = 1
	}
	current = clamp(current, 1, total)

	half := size / 2
	start := max(1, current-half)
	end := min(total, start+size-1)
	start = max(1, end-size+1)

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Pager is the full set of navigation controls for one list page.
type Pager struct {
	Pages   []int
	Current int
	Total   int
	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

// NewPager builds the controls for current out of total pages.
// Prev and Next stay on current when disabled; there is no wraparound.
func NewPager(current, total, size int) Pager {
	if total < 1 {
		total = 1
	}
	current = clamp(current, 1, total)
	p := Pager{
		Pages:   Window(current, total, size),
		Current: current,
		Total:   total,
		HasPrev: current > 1,
		HasNext: current < total,
		Prev:    current,
		Next:    current,
	}
	if p.HasPrev {
		p.Prev = current - 1
	}
	if p.HasNext {
		p.Next = current + 1
	}
	return p
}

// IsCurrent reports whether page is the active one.
func (p Pager) IsCurrent(page int) bool { return page == p.Current }

// ParsePage parses a page route segment; anything that is not a positive
// integer yields fallback.
func ParsePage(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
