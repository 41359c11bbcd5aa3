// Package carousel splits an ordered list into fixed-size pages with
// wraparound navigation.
package carousel

import (
	"github.com/charmbracelet/bubbles/paginator"

	"github.com/verte-zerg/slynxsite/internal/model"
)

// DefaultPageSize matches the three-column testimonial grid.
const DefaultPageSize = 3

// Paginator pages over an immutable item list. The zero value is not usable;
// construct with New.
type Paginator[T any] struct {
	items     []T
	pager     paginator.Model
	direction model.Direction
}

// New builds a paginator starting at page 0. Non-positive page sizes are
// clamped to 1.
func New[T any](items []T, pageSize int) *Paginator[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	pager := paginator.New(paginator.WithPerPage(pageSize))
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "%d / %d"
	p := &Paginator[T]{pager: pager, direction: model.Next}
	p.SetItems(items)
	return p
}

// SetItems replaces the backing list, recomputes the page count and clamps the
// current page into range.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	p.pager.TotalPages = pageCount(len(items), p.pager.PerPage)
	switch {
	case p.pager.TotalPages == 0:
		p.pager.Page = 0
	case p.pager.Page >= p.pager.TotalPages:
		p.pager.Page = p.pager.TotalPages - 1
	}
}

func pageCount(total, perPage int) int {
	return (total + perPage - 1) / perPage
}

// Advance moves one page in the given direction, wrapping at both ends.
// It is a no-op when there are no pages.
func (p *Paginator[T]) Advance(d model.Direction) {
	total := p.pager.TotalPages
	if total == 0 {
		return
	}
	p.direction = d
	if d == model.Prev {
		p.pager.Page = (p.pager.Page - 1 + total) % total
		return
	}
	p.pager.Page = (p.pager.Page + 1) % total
}

// Visible returns the items of the current page.
func (p *Paginator[T]) Visible() []T {
	if len(p.items) == 0 {
		return nil
	}
	start, end := p.pager.GetSliceBounds(len(p.items))
	return p.items[start:end]
}

// CurrentPage returns the zero-based page index.
func (p *Paginator[T]) CurrentPage() int {
	return p.pager.Page
}

// TotalPages returns ceil(len(items) / pageSize).
func (p *Paginator[T]) TotalPages() int {
	return p.pager.TotalPages
}

// PageSize returns the number of items per page.
func (p *Paginator[T]) PageSize() int {
	return p.pager.PerPage
}

// Len returns the number of items.
func (p *Paginator[T]) Len() int {
	return len(p.items)
}

// CanNavigate reports whether navigation controls should be shown, which is
// only the case when the items do not fit on a single page.
func (p *Paginator[T]) CanNavigate() bool {
	return len(p.items) > p.pager.PerPage
}

// Direction returns the direction of the last navigation.
func (p *Paginator[T]) Direction() model.Direction {
	return p.direction
}

// PageInfo renders the one-based "current / total" indicator.
func (p *Paginator[T]) PageInfo() string {
	if p.pager.TotalPages == 0 {
		return ""
	}
	return p.pager.View()
}
