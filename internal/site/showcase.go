package site

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/slynxsite/internal/model"
)

var (
	slideTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	slideDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	activeDot       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950")).Render("●")
	inactiveDot     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")).Render("○")
)

// Showcase is a card that shows one tab at a time with dot navigation.
type Showcase struct {
	tabs []model.ShowcaseTab
	dots paginator.Model
}

// NewShowcase builds a showcase starting at the first tab.
func NewShowcase(card model.ShowcaseCard) *Showcase {
	dots := paginator.New(paginator.WithPerPage(1), paginator.WithTotalPages(len(card.Tabs)))
	dots.Type = paginator.Dots
	dots.ActiveDot = activeDot
	dots.InactiveDot = inactiveDot
	return &Showcase{tabs: card.Tabs, dots: dots}
}

// Active returns the index of the visible tab.
func (s *Showcase) Active() int {
	return s.dots.Page
}

// Select shows tab i. Out of range indexes are ignored.
func (s *Showcase) Select(i int) {
	if i < 0 || i >= len(s.tabs) {
		return
	}
	s.dots.Page = i
}

// Move shows the tab delta positions away, wrapping around.
func (s *Showcase) Move(delta int) {
	n := len(s.tabs)
	if n == 0 {
		return
	}
	s.dots.Page = ((s.dots.Page+delta)%n + n) % n
}

// View renders the active tab and the dots.
func (s *Showcase) View(width int, focused bool) string {
	if len(s.tabs) == 0 {
		return ""
	}
	tab := s.tabs[s.dots.Page]
	style := cardStyle
	if focused {
		style = cardFocusStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		slideTitleStyle.Render(tab.Title),
		slideDescStyle.Render(tab.Description),
		"",
		s.dots.View(),
	)
	return style.Render(body)
}
