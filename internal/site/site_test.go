package site

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/slynxsite/internal/model"
)

func TestGlyphFallback(t *testing.T) {
	if Glyph("terminal") != ">_" {
		t.Fatalf("expected terminal glyph")
	}
	if Glyph("nope") != "•" {
		t.Fatalf("expected fallback glyph for unknown icon")
	}
}

func TestIconSize(t *testing.T) {
	out := Icon("arrow", 5, 3)
	if lipgloss.Width(out) != 5 || lipgloss.Height(out) != 3 {
		t.Fatalf("expected 5x3 icon box, got %dx%d", lipgloss.Width(out), lipgloss.Height(out))
	}
}

func TestLinkCardContents(t *testing.T) {
	out := LinkCard(model.LinkCard{Title: "Playground", Href: "#playground", Icon: "terminal", Description: "Try in your browser"}, 0, false)
	for _, want := range []string{"Playground", "Try in your browser", "#playground", ">_"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q: %s", want, out)
		}
	}
}

func TestLinkCardsStackWhenNarrow(t *testing.T) {
	cards := []model.LinkCard{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}
	wide := LinkCards(cards, 200, false)
	narrow := LinkCards(cards, 10, false)
	if lipgloss.Height(narrow) <= lipgloss.Height(wide) {
		t.Fatalf("expected stacked layout to be taller: %d vs %d", lipgloss.Height(narrow), lipgloss.Height(wide))
	}
	if LinkCards(nil, 80, false) != "" {
		t.Fatalf("expected empty output for no cards")
	}
}

func TestAccordionToggle(t *testing.T) {
	a := NewAccordion([]model.FAQEntry{
		{Question: "What is Slynx?", Answer: "A compiled language."},
		{Question: "Is it free?", Answer: "Yes."},
	}, "notty")
	out := a.View(60, true)
	if strings.Contains(out, "compiled") {
		t.Fatalf("expected answers hidden while collapsed")
	}
	a.Toggle()
	if !a.Items()[0].Expanded || a.Items()[1].Expanded {
		t.Fatalf("expected only the first item expanded")
	}
	out = a.View(60, true)
	if !strings.Contains(out, "compiled") {
		t.Fatalf("expected expanded answer in view: %s", out)
	}
	a.MoveCursor(5)
	if a.Cursor() != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", a.Cursor())
	}
	a.Toggle()
	a.MoveCursor(-5)
	a.Toggle()
	if a.Items()[0].Expanded || !a.Items()[1].Expanded {
		t.Fatalf("expected items to toggle independently")
	}
}

func TestAccordionEmpty(t *testing.T) {
	a := NewAccordion(nil, "")
	a.Toggle()
	a.MoveCursor(1)
	if a.View(40, true) != "" {
		t.Fatalf("expected empty view")
	}
}

func TestShowcaseNavigation(t *testing.T) {
	s := NewShowcase(model.ShowcaseCard{Tabs: []model.ShowcaseTab{
		{Title: "Fast"}, {Title: "Small"}, {Title: "Safe"},
	}})
	if s.Active() != 0 {
		t.Fatalf("expected first tab active")
	}
	s.Move(-1)
	if s.Active() != 2 {
		t.Fatalf("expected wrap to last tab, got %d", s.Active())
	}
	s.Select(1)
	if s.Active() != 1 {
		t.Fatalf("expected tab 1, got %d", s.Active())
	}
	s.Select(9)
	if s.Active() != 1 {
		t.Fatalf("expected out of range select to be ignored")
	}
	out := s.View(0, false)
	if !strings.Contains(out, "Small") || strings.Count(out, "●") != 1 || strings.Count(out, "○") != 2 {
		t.Fatalf("unexpected showcase view: %s", out)
	}
}
