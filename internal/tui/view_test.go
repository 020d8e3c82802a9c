package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/x/ansi"

	"github.com/talvid/swipedeck/internal/config"
)

func TestView_BeforeFirstResize(t *testing.T) {
	t.Parallel()

	m, err := NewModel(config.Default(), testDeck(), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_HeaderShowsTitleCategoryAndPosition(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 0)
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "Kennenlernen")
	assert.Contains(t, out, "party")
	assert.Contains(t, out, "1/3")
}

func TestView_PositionTracksIndex(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 1)
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "family")
}

func TestView_PickerOverlayReplacesCards(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 0)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "family", "picker lists every category")
	assert.Contains(t, out, "party")
}

func TestView_QuittingRendersNothing(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 0)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Empty(t, m.View())
}

func TestView_CardLinesShareWidth(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 0)
	out := m.View()

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), cardBodyRows)
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), m.width)
	}
}
