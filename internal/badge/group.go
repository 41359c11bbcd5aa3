// Package badge implements a single-select toggle set.
package badge

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/slynxsite/internal/model"
)

// SelectedMsg is emitted once for every Select call.
type SelectedMsg struct {
	ID string
}

// Group tracks exactly one selected badge id among a fixed set of badges.
//
// Select accepts ids that are not part of the set: the selection is opaque to
// the group, and such an id simply leaves every badge unselected when rendered.
type Group struct {
	badges   []model.Badge
	selected string
	has      bool
}

// NewGroup selects the first badge, or nothing when badges is empty.
func NewGroup(badges []model.Badge) *Group {
	g := &Group{badges: append([]model.Badge(nil), badges...)}
	if len(g.badges) > 0 {
		g.selected = g.badges[0].ID
		g.has = true
	}
	return g
}

// Select replaces the selection and returns a command emitting SelectedMsg.
// Re-selecting the current badge still emits the message.
func (g *Group) Select(id string) tea.Cmd {
	g.selected = id
	g.has = true
	return func() tea.Msg {
		return SelectedMsg{ID: id}
	}
}

// SelectIndex selects the badge at index i. Out of range indexes are ignored.
func (g *Group) SelectIndex(i int) tea.Cmd {
	if i < 0 || i >= len(g.badges) {
		return nil
	}
	return g.Select(g.badges[i].ID)
}

// Move selects the badge delta positions away from the current one, wrapping
// around the set.
func (g *Group) Move(delta int) tea.Cmd {
	count := len(g.badges)
	if count == 0 {
		return nil
	}
	idx := g.Index()
	if idx < 0 {
		idx = 0
		if delta > 0 {
			delta--
		}
	}
	next := ((idx+delta)%count + count) % count
	return g.Select(g.badges[next].ID)
}

// Selected returns the selected id; ok is false when nothing is selected.
func (g *Group) Selected() (id string, ok bool) {
	return g.selected, g.has
}

// IsSelected reports whether id is the current selection.
func (g *Group) IsSelected(id string) bool {
	return g.has && g.selected == id
}

// Index returns the position of the selected badge, or -1.
func (g *Group) Index() int {
	if !g.has {
		return -1
	}
	for i, b := range g.badges {
		if b.ID == g.selected {
			return i
		}
	}
	return -1
}

// Badges returns the badges of the group.
func (g *Group) Badges() []model.Badge {
	return g.badges
}

// Lookup returns the badge with the given id.
func (g *Group) Lookup(id string) (model.Badge, bool) {
	for _, b := range g.badges {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}
