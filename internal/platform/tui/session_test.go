package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rock-boy/internal/core"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewSessionModel(openStore(t), cfg, "tester", nil)
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)
	assert.Contains(t, m.View(), "Stub")

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	require.NotNil(t, m.game)
	assert.NotNil(t, cmd)

	g, ok := m.game.game.(*stubGame)
	require.True(t, ok)
	assert.Equal(t, 1, g.resets)

	m, _ = sessionSend(t, m, TickMsg{Gen: m.game.tickGen})
	assert.Len(t, g.inputs, 1)

	// Back is ignored while the run is live
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenGame, m.screen)

	g.state = core.GameState{GameOver: true, Score: 40}
	m, _ = sessionSend(t, m, TickMsg{Gen: m.game.tickGen})
	m, cmd = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.game)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "40", "menu shows the new best score")
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)

	// Ticks left over from a finished game must not reach the table
	m, cmd := sessionSend(t, m, TickMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, screenScores, m.screen)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.scores)
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionSend(t, m, runeKey("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionResizeCarriesIntoGame(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionSend(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.game)
	assert.Equal(t, 120, m.game.screen.Width())
	assert.Equal(t, 40, m.game.screen.Height())
}
