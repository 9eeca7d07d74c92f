package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-etris/internal/core"
	_ "github.com/vovakirdan/tui-etris/internal/games/tetris"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok, "Update returned %T", next)
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 100}
	m := NewSessionModel(nil, cfg, "alice", NewMetrics(nil))

	_, err := uuid.Parse(m.SessionID())
	require.NoError(t, err)
	assert.Equal(t, "alice", m.Username())
	assert.Contains(t, m.View(), "E T R I S")

	// Enter starts the first variant.
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, m.gameModel)
	assert.NotNil(t, cmd, "game should start its frame loop")
	assert.Contains(t, m.View(), "Score")

	m, _ = sessionUpdate(t, m, TickMsg{})
	assert.Equal(t, 1, m.gameModel.State().Figures)

	// Esc leaves the game without ending the session.
	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
	assert.False(t, isQuit(cmd))

	// Tab opens the scoreboard, Esc returns.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	assert.True(t, strings.Contains(m.View(), "HIGH SCORES"))

	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
	assert.False(t, isQuit(cmd))

	// Q ends the session.
	m, cmd = sessionUpdate(t, m, runeKey("q"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
}

func TestSessionQuitFromGame(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewSessionModel(nil, cfg, "bob", nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	assert.Contains(t, m.View(), "Etris Mini")

	_, cmd := sessionUpdate(t, m, runeKey("q"))
	assert.True(t, isQuit(cmd))
}

func TestListenAddr(t *testing.T) {
	assert.NoError(t, listenAddr(":23234"))
	assert.NoError(t, listenAddr("127.0.0.1:9090"))
	assert.Error(t, listenAddr("23234"))
}

func TestNewSSHServerRejectsBadAddress(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "nope"
	_, err := NewSSHServer(cfg)
	assert.Error(t, err)
}
