package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/slynxsite/internal/model"
	"github.com/verte-zerg/slynxsite/internal/site"
)

const (
	accentColor = lipgloss.Color("#3FB950")
	mutedColor  = lipgloss.Color("#8C8C8C")
	textColor   = lipgloss.Color("#F0F0F0")
	panelColor  = lipgloss.Color("#3A3A3A")

	maxContentWidth = 110
	cardGap         = 2
)

var (
	brandStyle       = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	linkStyle        = lipgloss.NewStyle().Foreground(textColor)
	headerStyle      = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(panelColor)
	actionStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	getStartedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0D1117")).Background(accentColor).Padding(0, 1)
	overlayStyle     = lipgloss.NewStyle().Padding(1, 2)
	overlayLinkStyle = lipgloss.NewStyle().Foreground(textColor).Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().Foreground(textColor).Bold(true)
	focusMarkStyle    = lipgloss.NewStyle().Foreground(accentColor)
	subtitleStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	descStyle         = lipgloss.NewStyle().Foreground(mutedColor)

	badgeStyle         = lipgloss.NewStyle().Foreground(mutedColor).Border(lipgloss.RoundedBorder()).BorderForeground(panelColor).Padding(0, 1)
	badgePrimaryStyle  = badgeStyle.Foreground(accentColor)
	badgeSelectedStyle = badgeStyle.Foreground(lipgloss.Color("#0D1117")).Background(accentColor).BorderForeground(accentColor)

	codeWindowStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(panelColor).Padding(0, 1)
	codeStyle       = lipgloss.NewStyle().Foreground(textColor)
	cursorStyle     = lipgloss.NewStyle().Background(accentColor)
	fileNameStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	testimonialStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(panelColor).Padding(0, 1)
	quoteStyle       = lipgloss.NewStyle().Foreground(textColor).Italic(true)
	avatarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#0D1117")).Background(accentColor).Bold(true).Padding(0, 1)
	authorStyle      = lipgloss.NewStyle().Foreground(textColor).Bold(true)
	roleStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	controlStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	controlLastStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle    = lipgloss.NewStyle().Foreground(accentColor)
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))

	trafficLights = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F56")).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBD2E")).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#27C93F")).Render("●")
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	header := m.renderHeader()
	footer := m.renderFooter()
	headerHeight, footerHeight := lipgloss.Height(header), lipgloss.Height(footer)
	bodyHeight := max(1, m.height-headerHeight-footerHeight)

	var body string
	if m.nav.OverlayOpen() {
		body = m.renderOverlay(m.width, m.height-footerHeight, headerHeight)
	} else {
		body = lipgloss.NewStyle().Height(bodyHeight).Render(m.body.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	brand := brandStyle.Render(m.content.SiteName)
	var left, right string
	if m.nav.Mode() == model.Wide {
		links := make([]string, 0, len(m.content.NavLinks))
		for _, l := range m.content.NavLinks {
			links = append(links, linkStyle.Render(l.Text))
		}
		left = brand + "   " + strings.Join(links, "   ")
		right = strings.Join([]string{
			actionStyle.Render(site.Glyph("search")),
			getStartedStyle.Render("Get Started"),
			actionStyle.Render(site.Glyph("theme")),
		}, "  ")
	} else {
		left = brand
		glyph := site.Glyph("menu")
		if m.nav.OverlayOpen() {
			glyph = site.Glyph("close")
		}
		right = actionStyle.Render(site.Glyph("search")) + "  " + actionStyle.Render(glyph)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	row := left + strings.Repeat(" ", gap) + right
	return headerStyle.Width(m.width).Render(row)
}

// renderOverlay draws the mobile menu into the space under the header. The
// header height comes from the caller's layout measurement.
func (m *Model) renderOverlay(width, available, headerHeight int) string {
	height := max(1, available-headerHeight)
	lines := make([]string, 0, len(m.content.NavLinks)+2)
	for _, l := range m.content.NavLinks {
		lines = append(lines, overlayLinkStyle.Render(l.Text))
	}
	lines = append(lines, "", getStartedStyle.Render("Get Started"))
	menu := overlayStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, menu)
}

func (m *Model) contentWidth() int {
	if m.width > maxContentWidth {
		return maxContentWidth
	}
	return m.width
}

func (m *Model) renderSections() string {
	width := m.contentWidth()
	parts := []string{
		m.renderHero(width),
		m.sectionTitle(sectionCards, "Get Started") + "\n" + site.LinkCards(m.content.Cards, width, m.focus == sectionCards),
		m.renderShowcase(width),
		m.renderTestimonials(width),
		m.sectionTitle(sectionFAQ, "FAQ") + "\n" + m.faq.View(width-2, m.focus == sectionFAQ),
	}
	page := strings.Join(parts, "\n\n")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
}

func (m *Model) sectionTitle(s section, title string) string {
	mark := "  "
	if m.focus == s {
		mark = focusMarkStyle.Render("▸ ")
	}
	return mark + sectionTitleStyle.Render(title)
}

func (m *Model) renderHero(width int) string {
	hero := m.content.Hero
	title := m.sectionTitle(sectionHero, hero.Title+" ") + brandStyle.Render(hero.BrandName) + sectionTitleStyle.Render("?")
	desc := descStyle.Width(width).Render(hero.Description)
	return strings.Join([]string{title, desc, m.renderBadges(width), m.renderCodeWindow(width)}, "\n")
}

func (m *Model) renderBadges(width int) string {
	rendered := make([]string, 0, len(m.badges.Badges()))
	for _, b := range m.badges.Badges() {
		style := badgeStyle
		switch {
		case m.badges.IsSelected(b.ID):
			style = badgeSelectedStyle
		case b.Primary:
			style = badgePrimaryStyle
		}
		rendered = append(rendered, style.Render(b.Label))
	}
	return flowRow(rendered, width, 1)
}

func (m *Model) renderCodeWindow(width int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	header := trafficLights + "  " + fileNameStyle.Render(m.settings.FileName)
	code := wrapStyledRunes(buildCodeRunes([]rune(m.animator.Prefix())), inner)
	full := wrapStyledRunes(buildCodeRunes([]rune(m.animator.Source())), inner)
	return codeWindowStyle.
		Width(width - 2).
		Height(lipgloss.Height(full) + 2).
		Render(header + "\n\n" + code)
}

func (m *Model) renderShowcase(width int) string {
	title := m.sectionTitle(sectionShowcase, "Showcase")
	if len(m.showcase) == 0 {
		return title
	}
	cols := len(m.showcase)
	cardWidth := (width - cardGap*(cols-1)) / cols
	stacked := m.nav.Mode() == model.Compact || cardWidth < 24
	if stacked {
		cardWidth = width
	}
	cards := make([]string, 0, cols)
	for i, s := range m.showcase {
		cards = append(cards, s.View(cardWidth-2, m.focus == sectionShowcase && i == m.showcaseIdx))
	}
	if stacked {
		return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return title + "\n" + joinWithGap(cards, cardGap)
}

func (m *Model) renderTestimonials(width int) string {
	sec := m.content.Testimonials
	head := m.sectionTitle(sectionTestimonials, sec.Title) + "\n" + subtitleStyle.Render("  "+sec.Subtitle)
	visible := m.carousel.Visible()
	if len(visible) == 0 {
		return head + "\n" + subtitleStyle.Render("  No testimonials yet.")
	}

	perRow := m.carousel.PageSize()
	if m.nav.Mode() == model.Compact {
		perRow = 1
	}
	cardWidth := (width - cardGap*(perRow-1)) / perRow
	if cardWidth < 20 {
		perRow = 1
		cardWidth = width
	}
	cards := make([]string, 0, len(visible))
	for _, t := range visible {
		cards = append(cards, testimonialCard(t, cardWidth))
	}
	var grid string
	if perRow == 1 {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = joinWithGap(cards, cardGap)
	}

	out := head + "\n" + grid
	if m.carousel.CanNavigate() {
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, m.renderControls())
	}
	return out
}

func (m *Model) renderControls() string {
	prev, next := controlStyle, controlStyle
	if m.carousel.Direction() == model.Prev {
		prev = controlLastStyle
	} else {
		next = controlLastStyle
	}
	return prev.Render(site.Glyph("prev")) + " " + controlStyle.Render(m.carousel.PageInfo()) + " " + next.Render(site.Glyph("next"))
}

func testimonialCard(t model.Testimonial, width int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	avatar := avatarStyle.Render(avatarInitial(t.AuthorName))
	if t.AvatarURL != "" {
		avatar = avatarStyle.Render("◉")
	}
	author := avatar + " " + authorStyle.Render(t.AuthorName)
	body := strings.Join([]string{
		quoteStyle.Width(inner).Render("“" + t.Text + "”"),
		"",
		author,
		roleStyle.Render(t.AuthorRole),
	}, "\n")
	return testimonialStyle.Width(width - 2).Render(body)
}

// avatarInitial is the placeholder shown for authors without an avatar.
func avatarInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

func (m *Model) renderFooter() string {
	bindings := []key.Binding{m.keys.NextFocus}
	switch m.focus {
	case sectionHero:
		bindings = append(bindings, m.keys.Badge, m.keys.Skip, m.keys.Copy)
	case sectionShowcase:
		bindings = append(bindings, m.keys.Left, m.keys.Right, m.keys.Down)
	case sectionTestimonials:
		if m.carousel.CanNavigate() {
			bindings = append(bindings, m.keys.Left, m.keys.Right)
		}
	case sectionFAQ:
		bindings = append(bindings, m.keys.Down, m.keys.Toggle)
	}
	if m.nav.Mode() == model.Compact {
		bindings = append(bindings, m.keys.Menu)
	}
	bindings = append(bindings, m.keys.Scroll, m.keys.Quit)
	line := m.help.ShortHelpView(bindings)
	if m.status != "" {
		style := statusStyle
		if m.statusIsErr {
			style = statusErrStyle
		}
		line += "  " + style.Render(m.status)
	}
	return footerStyle.MaxWidth(m.width).Render(line)
}

// flowRow lays items out left to right and starts a new row when the next item
// would not fit.
func flowRow(items []string, width, gap int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, item := range items {
		w := lipgloss.Width(item)
		if len(row) > 0 && rowWidth+gap+w > width {
			rows = append(rows, joinWithGap(row, gap))
			row = nil
			rowWidth = 0
		}
		if len(row) > 0 {
			rowWidth += gap
		}
		row = append(row, item)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, joinWithGap(row, gap))
	}
	return strings.Join(rows, "\n")
}

func joinWithGap(blocks []string, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
