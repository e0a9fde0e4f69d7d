package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blobrun/internal/registry"
	"github.com/vovakirdan/blobrun/internal/storage"
)

const scoreboardRows = 100

// scoreboardView selects what the table lists.
type scoreboardView int

const (
	viewBest scoreboardView = iota
	viewRecent
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	View   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.View, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.View}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "variant")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists best times or recent runs per game variant.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	view   scoreboardView
	store  *storage.Store

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	rows      int // rows loaded for the current game and view
	bestSeed  int64
	bestScore int
	hasBest   bool
	loadErr   error

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

// columns returns the table columns for the current view, the last one
// stretched into whatever width is left.
func (m *ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 12},
	}
	if m.view == viewRecent {
		cols = []table.Column{
			{Title: "Time", Width: 9},
			{Title: "End", Width: 7},
			{Title: "Level", Width: 7},
			{Title: "Seed", Width: 20},
		}
	}

	used := 0
	for _, c := range cols[:len(cols)-1] {
		used += c.Width + 2
	}
	// Frame border and padding take 4 cells.
	if rest := m.width - 4 - used - 2; rest > cols[len(cols)-1].Width {
		cols[len(cols)-1].Width = min(rest, 24)
	}
	return cols
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		// Title, tabs, frame, summary and help take 9 rows.
		table.WithHeight(max(m.height-9, 3)),
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

// reload fetches rows and the best seed for the selected game.
func (m *ScoreboardModel) reload() {
	m.rows = 0
	m.hasBest = false
	m.loadErr = nil
	m.table.SetRows(nil)

	if m.store == nil || len(m.games) == 0 {
		return
	}
	gameID := m.games[m.cursor].ID

	var rows []table.Row
	switch m.view {
	case viewBest:
		scores, err := m.store.TopScores(gameID, scoreboardRows)
		if err != nil {
			m.loadErr = err
			return
		}
		for i, s := range scores {
			rows = append(rows, table.Row{
				fmt.Sprint(i + 1),
				FormatTime(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	case viewRecent:
		runs, err := m.store.RecentRuns(gameID, scoreboardRows)
		if err != nil {
			m.loadErr = err
			return
		}
		for _, r := range runs {
			difficulty := r.Difficulty
			if difficulty == "" {
				difficulty = "-"
			}
			rows = append(rows, table.Row{
				FormatTime(r.Score),
				r.EndReason,
				difficulty,
				fmt.Sprint(r.Seed),
			})
		}
	}

	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()

	if seed, score, ok, err := m.store.BestSeed(gameID); err == nil && ok {
		m.bestSeed, m.bestScore, m.hasBest = seed, score, true
	}
}

// FormatTime renders a score in tenths of a second as "12.3s".
func FormatTime(tenths int) string {
	return fmt.Sprintf("%d.%ds", tenths/10, tenths%10)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if n := len(m.games); n > 0 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
					step = n - 1
				}
				m.cursor = (m.cursor + step) % n
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.table = m.newTable()
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST TIMES"
	if m.view == viewRecent {
		title = "RECENT RUNS"
	}
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = sbActiveStyle.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sbFrameStyle.Render(m.body())))
	b.WriteString("\n")

	if m.hasBest {
		line := fmt.Sprintf("Best run %s on seed %d", FormatTime(m.bestScore), m.bestSeed)
		b.WriteString(centerText(sbDimStyle.Render(line), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// body is the framed part: the table, or a note when there is nothing to show.
func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return sbDimStyle.Render("No score database.")
	case m.loadErr != nil:
		return sbDimStyle.Render("Could not load runs: " + m.loadErr.Error())
	case m.rows == 0:
		return sbDimStyle.Italic(true).Padding(1, 2).Render("No runs recorded yet.\nPlay a game to set a time!")
	}
	return m.table.View()
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

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
