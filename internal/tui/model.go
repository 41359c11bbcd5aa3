// Package tui provides the Bubble Tea site interface.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/slynxsite/internal/badge"
	"github.com/verte-zerg/slynxsite/internal/carousel"
	"github.com/verte-zerg/slynxsite/internal/content"
	"github.com/verte-zerg/slynxsite/internal/model"
	"github.com/verte-zerg/slynxsite/internal/nav"
	"github.com/verte-zerg/slynxsite/internal/site"
	"github.com/verte-zerg/slynxsite/internal/typewriter"
)

type section int

const (
	sectionHero section = iota
	sectionCards
	sectionShowcase
	sectionTestimonials
	sectionFAQ
	sectionCount
)

// faqStyle is the glamour style used for FAQ answers.
const faqStyle = "dark"

type copiedMsg struct {
	err error
}

// Model implements the Bubble Tea site UI. It is the only place where widgets
// meet: badge selections come back as messages and are mapped to code samples
// for the animator here.
type Model struct {
	settings model.Settings
	content  model.Content
	logger   *zap.Logger

	animator *typewriter.Animator
	badges   *badge.Group
	carousel *carousel.Paginator[model.Testimonial]
	nav      *nav.Controller
	faq      *site.Accordion
	showcase []*site.Showcase

	keys keyMap
	help help.Model
	body viewport.Model

	focus       section
	showcaseIdx int
	status      string
	statusIsErr bool

	width    int
	height   int
	quitting bool
}

// NewModel constructs the site model. probe supplies the initial width for the
// navigation bar; typewriter options are passed to the hero animator.
func NewModel(settings model.Settings, c model.Content, logger *zap.Logger, probe nav.WidthProbe, opts ...typewriter.Option) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.FileName == "" {
		settings.FileName = "MAIN.SX"
	}
	m := &Model{
		settings: settings,
		content:  c,
		logger:   logger,
		badges:   badge.NewGroup(c.Hero.Badges),
		carousel: carousel.New(c.Testimonials.Entries, settings.PageSize),
		nav:      nav.NewController(settings.Breakpoint, probe),
		keys:     defaultKeyMap(),
		help:     help.New(),
		body:     viewport.New(0, 0),
	}
	if settings.InitialBadge != "" {
		m.badges.Select(settings.InitialBadge)
	}
	m.faq = site.NewAccordion(c.FAQ, faqStyle)
	m.showcase = buildShowcase(c.Showcase)
	m.animator = typewriter.New(m.selectedCode(), settings.TypingSpeed, opts...)
	if m.nav.Measured() {
		m.width = m.nav.Width()
	}
	m.logger.Debug("site model ready",
		zap.String("mode", m.nav.Mode().String()),
		zap.Bool("measured", m.nav.Measured()),
		zap.Int("testimonial_pages", m.carousel.TotalPages()))
	return m
}

func buildShowcase(cards []model.ShowcaseCard) []*site.Showcase {
	out := make([]*site.Showcase, 0, len(cards))
	for _, c := range cards {
		out = append(out, site.NewShowcase(c))
	}
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.animator.Start()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncBody()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.nav.Resize(msg.Width) {
			m.logger.Debug("layout mode changed", zap.String("mode", m.nav.Mode().String()), zap.Int("width", msg.Width))
		}
		return nil
	case typewriter.TickMsg:
		_, cmd := m.animator.Update(msg)
		return cmd
	case badge.SelectedMsg:
		return m.handleBadgeSelected(msg.ID)
	case content.ReloadedMsg:
		return m.applyContent(msg.Content)
	case content.ReloadFailedMsg:
		m.setStatus(msg.Err.Error(), true)
		return nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", zap.Error(msg.err))
			m.setStatus("copy failed: "+msg.err.Error(), true)
			return nil
		}
		m.setStatus("code copied", false)
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return tea.Quit
	case key.Matches(msg, m.keys.Menu):
		if m.nav.ToggleMenu() {
			m.logger.Debug("menu toggled", zap.Bool("open", m.nav.OverlayOpen()))
		}
		return nil
	case key.Matches(msg, m.keys.Close):
		m.nav.CloseMenu()
		return nil
	}
	if m.nav.OverlayOpen() {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.focus = (m.focus + 1) % sectionCount
		return nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = (m.focus - 1 + sectionCount) % sectionCount
		return nil
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return cmd
	case key.Matches(msg, m.keys.Copy):
		return m.copyCode()
	}
	switch m.focus {
	case sectionHero:
		return m.handleHeroKey(msg)
	case sectionShowcase:
		m.handleShowcaseKey(msg)
	case sectionTestimonials:
		m.handleTestimonialKey(msg)
	case sectionFAQ:
		m.handleFAQKey(msg)
	}
	return nil
}

func (m *Model) handleHeroKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m.badges.Move(-1)
	case key.Matches(msg, m.keys.Right):
		return m.badges.Move(1)
	case key.Matches(msg, m.keys.Badge):
		return m.badges.SelectIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Skip):
		m.animator.Skip()
	}
	return nil
}

func (m *Model) handleShowcaseKey(msg tea.KeyMsg) {
	if len(m.showcase) == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.showcase[m.showcaseIdx].Move(-1)
	case key.Matches(msg, m.keys.Right):
		m.showcase[m.showcaseIdx].Move(1)
	case key.Matches(msg, m.keys.Up):
		m.showcaseIdx = max(0, m.showcaseIdx-1)
	case key.Matches(msg, m.keys.Down):
		m.showcaseIdx = min(len(m.showcase)-1, m.showcaseIdx+1)
	}
}

func (m *Model) handleTestimonialKey(msg tea.KeyMsg) {
	if !m.carousel.CanNavigate() {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.carousel.Advance(model.Prev)
	case key.Matches(msg, m.keys.Right):
		m.carousel.Advance(model.Next)
	default:
		return
	}
	m.logger.Debug("testimonial page advanced",
		zap.String("direction", m.carousel.Direction().String()),
		zap.Int("page", m.carousel.CurrentPage()))
}

func (m *Model) handleFAQKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.faq.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.faq.MoveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		m.faq.Toggle()
	}
}

// handleBadgeSelected drops messages for ids that are no longer selected:
// select commands run concurrently, so an older selection can arrive last.
func (m *Model) handleBadgeSelected(id string) tea.Cmd {
	if !m.badges.IsSelected(id) {
		m.logger.Debug("stale badge selection dropped", zap.String("id", id))
		return nil
	}
	m.logger.Debug("badge selected", zap.String("id", id))
	code, ok := content.CodeFor(m.content, id)
	if !ok {
		m.logger.Warn("no code sample for badge", zap.String("id", id))
		return nil
	}
	return m.animator.SetSource(code)
}

func (m *Model) selectedCode() string {
	id, ok := m.badges.Selected()
	if !ok {
		return ""
	}
	code, _ := content.CodeFor(m.content, id)
	return code
}

// applyContent swaps in reloaded site copy. The badge selection survives when
// its id still exists; the carousel clamps its page to the new list.
func (m *Model) applyContent(c model.Content) tea.Cmd {
	prev, hadPrev := m.badges.Selected()
	m.content = c
	m.badges = badge.NewGroup(c.Hero.Badges)
	if _, exists := m.badges.Lookup(prev); hadPrev && exists {
		m.badges.Select(prev)
	}
	m.carousel.SetItems(c.Testimonials.Entries)
	m.faq = site.NewAccordion(c.FAQ, faqStyle)
	m.showcase = buildShowcase(c.Showcase)
	if m.showcaseIdx >= len(m.showcase) {
		m.showcaseIdx = max(0, len(m.showcase)-1)
	}
	m.logger.Info("content reloaded",
		zap.Int("badges", len(c.Hero.Badges)),
		zap.Int("testimonials", len(c.Testimonials.Entries)))
	m.setStatus("content reloaded", false)
	return m.animator.SetSource(m.selectedCode())
}

func (m *Model) copyCode() tea.Cmd {
	text := m.animator.Source()
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m *Model) shutdown() {
	m.animator.Stop()
	m.nav.Detach()
	m.quitting = true
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = lipgloss.Height(m.renderHeader())
	footerHeight = lipgloss.Height(m.renderFooter())
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) syncBody() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.body.Width = m.width
	m.body.Height = bodyHeight
	m.body.SetContent(m.renderSections())
}
