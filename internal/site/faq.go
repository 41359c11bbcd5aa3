package site

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/slynxsite/internal/model"
)

var (
	questionStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	questionCursorStyle = questionStyle.Foreground(lipgloss.Color("#3FB950")).Bold(true)
	faqIconStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// FAQItem is a question whose answer is revealed when expanded.
type FAQItem struct {
	Entry    model.FAQEntry
	Expanded bool
}

// Toggle flips the expanded state.
func (i *FAQItem) Toggle() {
	i.Expanded = !i.Expanded
}

// Accordion is a list of independent FAQ items with a cursor.
type Accordion struct {
	items  []FAQItem
	cursor int

	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewAccordion builds an accordion with every item collapsed. style is a
// glamour standard style name; empty selects "dark".
func NewAccordion(entries []model.FAQEntry, style string) *Accordion {
	if style == "" {
		style = "dark"
	}
	items := make([]FAQItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, FAQItem{Entry: e})
	}
	return &Accordion{items: items, style: style, renderers: map[int]*glamour.TermRenderer{}}
}

// Items returns the accordion items.
func (a *Accordion) Items() []FAQItem {
	return a.items
}

// Cursor returns the index of the highlighted item.
func (a *Accordion) Cursor() int {
	return a.cursor
}

// MoveCursor moves the highlight by delta, stopping at both ends.
func (a *Accordion) MoveCursor(delta int) {
	if len(a.items) == 0 {
		return
	}
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.items) {
		a.cursor = len(a.items) - 1
	}
}

// Toggle expands or collapses the highlighted item.
func (a *Accordion) Toggle() {
	if len(a.items) == 0 {
		return
	}
	a.items[a.cursor].Toggle()
}

// View renders the accordion. The cursor is only drawn when focused.
func (a *Accordion) View(width int, focused bool) string {
	lines := make([]string, 0, len(a.items))
	for i, item := range a.items {
		icon := Glyph("expand")
		if item.Expanded {
			icon = Glyph("collapse")
		}
		style := questionStyle
		if focused && i == a.cursor {
			style = questionCursorStyle
		}
		lines = append(lines, style.Render(item.Entry.Question)+" "+faqIconStyle.Render(icon))
		if item.Expanded {
			lines = append(lines, a.renderAnswer(item.Entry.Answer, width))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *Accordion) renderAnswer(answer string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, ok := a.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(a.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return answer
		}
		a.renderers[width] = r
	}
	out, err := r.Render(answer)
	if err != nil {
		return answer
	}
	return strings.Trim(out, "\n")
}
