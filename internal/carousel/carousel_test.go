package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/slynxsite/internal/model"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestWraparound(t *testing.T) {
	p := New(seq(7), 3)
	if p.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages())
	}
	for i := 0; i < 3; i++ {
		p.Advance(model.Next)
	}
	if p.CurrentPage() != 0 {
		t.Fatalf("expected page 0 after three advances, got %d", p.CurrentPage())
	}
	p.Advance(model.Prev)
	if p.CurrentPage() != 2 {
		t.Fatalf("expected page 2 after prev from 0, got %d", p.CurrentPage())
	}
	if p.Direction() != model.Prev {
		t.Fatalf("expected last direction prev, got %s", p.Direction())
	}
}

func TestVisibleSlices(t *testing.T) {
	p := New(seq(7), 3)
	pages := [][]int{}
	for i := 0; i < p.TotalPages(); i++ {
		pages = append(pages, p.Visible())
		p.Advance(model.Next)
	}
	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7}}
	if diff := cmp.Diff(want, pages); diff != "" {
		t.Fatalf("unexpected pages (-want +got):\n%s", diff)
	}
}

func TestControlsHiddenWhenItemsFit(t *testing.T) {
	p := New(seq(2), 3)
	if p.CanNavigate() {
		t.Fatalf("expected controls hidden for 2 items with page size 3")
	}
	if p.CurrentPage() != 0 {
		t.Fatalf("expected page 0, got %d", p.CurrentPage())
	}
	exact := New(seq(3), 3)
	if exact.CanNavigate() {
		t.Fatalf("expected controls hidden when items exactly fill a page")
	}
}

func TestEmptyList(t *testing.T) {
	p := New[int](nil, 3)
	if p.TotalPages() != 0 || p.CurrentPage() != 0 {
		t.Fatalf("expected no pages, got total=%d page=%d", p.TotalPages(), p.CurrentPage())
	}
	p.Advance(model.Next)
	p.Advance(model.Prev)
	if p.CurrentPage() != 0 {
		t.Fatalf("expected advance to be a no-op, got page %d", p.CurrentPage())
	}
	if p.Visible() != nil {
		t.Fatalf("expected no visible items")
	}
	if p.PageInfo() != "" {
		t.Fatalf("expected empty page info")
	}
}

func TestZeroPageSizeIsClamped(t *testing.T) {
	p := New(seq(3), 0)
	if p.PageSize() != 1 || p.TotalPages() != 3 {
		t.Fatalf("expected page size 1 and 3 pages, got %d and %d", p.PageSize(), p.TotalPages())
	}
}

func TestSetItemsClampsCurrentPage(t *testing.T) {
	p := New(seq(7), 3)
	p.Advance(model.Prev)
	if p.CurrentPage() != 2 {
		t.Fatalf("expected page 2, got %d", p.CurrentPage())
	}
	p.SetItems(seq(4))
	if p.TotalPages() != 2 || p.CurrentPage() != 1 {
		t.Fatalf("expected clamp to page 1 of 2, got %d of %d", p.CurrentPage(), p.TotalPages())
	}
	if diff := cmp.Diff([]int{4}, p.Visible()); diff != "" {
		t.Fatalf("unexpected visible items (-want +got):\n%s", diff)
	}
	p.SetItems(nil)
	if p.TotalPages() != 0 || p.CurrentPage() != 0 {
		t.Fatalf("expected reset to page 0, got %d of %d", p.CurrentPage(), p.TotalPages())
	}
}

func TestSetItemsKeepsPageInRange(t *testing.T) {
	p := New(seq(7), 3)
	p.Advance(model.Next)
	p.SetItems(seq(9))
	if p.CurrentPage() != 1 {
		t.Fatalf("expected page to stay at 1, got %d", p.CurrentPage())
	}
}

func TestPageInfo(t *testing.T) {
	p := New(seq(7), 3)
	p.Advance(model.Next)
	if got := p.PageInfo(); got != "2 / 3" {
		t.Fatalf("expected page info 2 / 3, got %q", got)
	}
}
