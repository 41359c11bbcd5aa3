package site

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/slynxsite/internal/model"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardFocusStyle = cardStyle.
			BorderForeground(lipgloss.Color("#3FB950"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardHrefStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Underline(true)
)

// LinkCard renders a card with its icon, title, description and target.
func LinkCard(card model.LinkCard, width int, focused bool) string {
	style := cardStyle
	if focused {
		style = cardFocusStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		Icon(card.Icon, 0, 1),
		cardTitleStyle.Render(card.Title),
		cardDescStyle.Render(card.Description+" "+Glyph("arrow")),
		cardHrefStyle.Render(card.Href),
	)
	return style.Render(body)
}

// LinkCards lays cards out in a row when they fit in width, otherwise stacked.
// Focused cards get a highlighted border.
func LinkCards(cards []model.LinkCard, width int, focused bool) string {
	if len(cards) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, LinkCard(c, 0, focused))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width <= 0 || lipgloss.Width(row) <= width {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
