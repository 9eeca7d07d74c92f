package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-etris/internal/core"
	"github.com/vovakirdan/tui-etris/internal/registry"
	"github.com/vovakirdan/tui-etris/internal/storage"
)

// helpHeight is the line reserved under the game for the key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	metrics       *Metrics
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	runID         string // one per started game, for logs and screenshots
	screenshotDir string
	embedded      bool // hosted by a SessionModel; Back must not quit the program
	quitting      bool
	backToMenu    bool
	scoreSaved    bool // Whether score has been saved for current game over
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithMetrics records game starts and results in m.
func WithMetrics(m *Metrics) ModelOption {
	return func(model *Model) {
		model.metrics = m
	}
}

// WithScreenshotDir sets where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) ModelOption {
	return func(model *Model) {
		model.screenshotDir = dir
	}
}

// Embedded marks a model hosted by another model. Back then only flags
// BackToMenu instead of ending the program.
func Embedded() ModelOption {
	return func(model *Model) {
		model.embedded = true
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:         store,
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	// The game is started here rather than in Init so the model returned to
	// the caller already carries the run ID and initial state.
	m.startGame()
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "etris-screenshots")
	}
	return filepath.Join(home, ".etris", "screenshots")
}

func (m *Model) startGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.metrics.GameStarted(m.game.ID())
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys

	switch {
	case key.Matches(msg, keys.Screenshot):
		//nolint:errcheck // Best-effort save, game continues regardless
		m.SaveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Back):
		m.backToMenu = true
		m.closeGame()
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.closeGame()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running and
// re-centers itself on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Restart is handled by the game; pick up the new run here.
	if wasOver && !m.gameState.GameOver {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.metrics.GameStarted(m.game.ID())
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishGame()
	}

	return m, tickCmd(m.config.TickRate)
}

// finishGame records the result once per game over.
func (m *Model) finishGame() {
	m.scoreSaved = true
	m.metrics.GameFinished(m.game.ID(), m.gameState)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Lines, m.gameState.Figures)
}

func (m *Model) closeGame() {
	if c, ok := m.game.(io.Closer); ok {
		c.Close() //nolint:errcheck // nothing to report on exit
	}
}

// SaveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) SaveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), timestamp, m.runID[:8])
	path := filepath.Join(m.screenshotDir, name)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID identifies the current game run.
func (m Model) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It returns true when the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
