package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-etris/internal/registry"
	"github.com/vovakirdan/tui-etris/internal/storage"
)

const (
	scoreLimit     = 100
	statsWidth     = 22 // stats panel, shown when the terminal is wide enough
	wideScoreboard = 76
	chromeHeight   = 9 // title, tabs, borders and help
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	sbWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Clear, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next field")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev field")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x x", "clear")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded games per variant.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	counts   map[string]int // games recorded per variant, for the tabs
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int

	confirmClear bool // first x pressed, waiting for the second
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= wideScoreboard
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	avail := m.width - 8
	if m.wide() {
		avail -= statsWidth + 4
	}
	// Rank, score, lines, figures and the column gaps take 33 cells.
	if extra := avail - 33 - dateWidth; extra > 0 {
		dateWidth += min(extra, 8)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 9},
			{Title: "Lines", Width: 6},
			{Title: "Figures", Width: 8},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches scores and stats for the current variant and the per-variant
// game counts. Read errors leave the view empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.counts = nil, nil, nil

	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if scores, err := m.store.TopScores(id, scoreLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
		if all, err := m.store.GetAllGamesStats(); err == nil {
			m.counts = make(map[string]int, len(all))
			for gameID, st := range all {
				m.counts[gameID] = st.GamesCount
			}
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Figures),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}
	return m, nil
}

func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Clear) {
		m.confirmClear = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.selectVariant(m.current + 1)

	case key.Matches(msg, m.keys.Prev):
		m.selectVariant(m.current - 1)

	case key.Matches(msg, m.keys.Clear):
		if !m.confirmClear {
			m.confirmClear = true
			break
		}
		m.confirmClear = false
		if m.store != nil && len(m.variants) > 0 {
			//nolint:errcheck // a failed clear leaves the table as it was
			m.store.ClearScores(m.variants[m.current].ID)
			m.reload()
		}

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectVariant moves to variant i, wrapping at both ends.
func (m *ScoreboardModel) selectVariant(i int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = (i%n + n) % n
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sbTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := sbPanelStyle.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", sbPanelStyle.Width(statsWidth).Render(m.statsView()))
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.confirmClear {
		b.WriteString(sbWarnStyle.Render("Press x again to delete every score of this field"))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// tabs renders one label per variant with its recorded game count.
func (m ScoreboardModel) tabs() string {
	labels := make([]string, 0, len(m.variants))
	for i, v := range m.variants {
		label := v.Title
		if n := m.counts[v.ID]; n > 0 {
			label = fmt.Sprintf("%s (%d)", v.Title, n)
		}
		if i == m.current {
			labels = append(labels, sbActiveStyle.Render(label))
		} else {
			labels = append(labels, sbTabStyle.Render(label))
		}
	}

	line := strings.Join(labels, " ")
	if lipgloss.Width(line) > m.width && len(m.variants) > 0 {
		return sbActiveStyle.Render("< " + m.variants[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return sbEmptyStyle.Render("No games recorded yet.")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No stats yet"
	}
	st := m.stats
	return strings.Join([]string{
		sbTitleStyle.Render("Stats"),
		"",
		fmt.Sprintf("Games      %d", st.GamesCount),
		fmt.Sprintf("Best       %d", st.HighScore),
		fmt.Sprintf("Average    %.0f", st.AvgScore),
		fmt.Sprintf("Best lines %d", st.BestLines),
		fmt.Sprintf("All lines  %d", st.TotalLines),
		"",
		"Last " + st.LastPlayed.Local().Format("Jan 02 15:04"),
	}, "\n")
}

// Current returns the variant shown, or "" when none is registered.
func (m ScoreboardModel) Current() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// Scores returns the rows currently loaded.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
