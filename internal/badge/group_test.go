package badge

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/slynxsite/internal/model"
)

func testBadges() []model.Badge {
	return []model.Badge{{ID: "a"}, {ID: "b"}, {ID: "c"}}
}

func selectedIDs(g *Group) []string {
	var ids []string
	for _, b := range g.Badges() {
		if g.IsSelected(b.ID) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestNewGroupSelectsFirstBadge(t *testing.T) {
	g := NewGroup(testBadges())
	id, ok := g.Selected()
	require.True(t, ok)
	require.Equal(t, "a", id)
	require.Equal(t, []string{"a"}, selectedIDs(g))
}

func TestSelectIsSingleAndEmitsOnce(t *testing.T) {
	g := NewGroup(testBadges())
	cmd := g.Select("c")
	require.Equal(t, []string{"c"}, selectedIDs(g))
	require.Equal(t, SelectedMsg{ID: "c"}, runCmd(t, cmd))
}

func TestReselectStillEmits(t *testing.T) {
	g := NewGroup(testBadges())
	require.Equal(t, SelectedMsg{ID: "a"}, runCmd(t, g.Select("a")))
	require.Equal(t, []string{"a"}, selectedIDs(g))
}

func TestSelectUnknownIDIsAccepted(t *testing.T) {
	g := NewGroup(testBadges())
	require.Equal(t, SelectedMsg{ID: "zzz"}, runCmd(t, g.Select("zzz")))
	id, ok := g.Selected()
	require.True(t, ok)
	require.Equal(t, "zzz", id)
	require.Empty(t, selectedIDs(g))
	require.Equal(t, -1, g.Index())
}

func TestEmptyGroupHasNoSelection(t *testing.T) {
	g := NewGroup(nil)
	_, ok := g.Selected()
	require.False(t, ok)
	require.Nil(t, g.Move(1))
	require.Nil(t, g.SelectIndex(0))
}

func TestMoveWrapsAround(t *testing.T) {
	g := NewGroup(testBadges())
	require.Equal(t, SelectedMsg{ID: "c"}, runCmd(t, g.Move(-1)))
	require.Equal(t, SelectedMsg{ID: "a"}, runCmd(t, g.Move(1)))
	require.Equal(t, SelectedMsg{ID: "b"}, runCmd(t, g.Move(1)))
}

func TestSelectIndex(t *testing.T) {
	g := NewGroup(testBadges())
	require.Equal(t, SelectedMsg{ID: "b"}, runCmd(t, g.SelectIndex(1)))
	require.Nil(t, g.SelectIndex(3))
	require.Equal(t, 1, g.Index())
}
