package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blobrun/internal/config"
	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/registry"
	"github.com/vovakirdan/blobrun/internal/storage"
)

// MenuItem is one playable variant.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // Best time in tenths, 0 if never played
	Runs   int
}

// menuDifficulties are cycled with left/right. The empty entry keeps
// whatever the config file says.
var menuDifficulties = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// menuChoice is how the menu was left.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuBlobStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuBlob = ` ▄██▄    ▄▀▀▄
█ ▪▪ █  ▀▄▄▀`

// MenuModel picks a variant and a difficulty.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // index into menuDifficulties
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	choice     menuChoice
}

// NewMenuModel lists every registered game with its record from store,
// which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if sum, err := store.Summary(g.ID); err == nil {
				item.Runs = sum.Runs
			}
			// Bare scores count too.
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		if m.choice != choiceNone {
			return m, nil
		}
		n := len(menuDifficulties)
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionLeft:
			m.difficulty = (m.difficulty + n - 1) % n
		case MenuActionRight:
			m.difficulty = (m.difficulty + 1) % n
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			m.choice = choicePlay
			return m, tea.Quit
		case MenuActionScoreboard:
			m.choice = choiceScores
			return m, tea.Quit
		case MenuActionQuit:
			m.choice = choiceQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	var rows []string
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		if item.Best > 0 {
			line += menuDimStyle.Render(fmt.Sprintf("  best %s", FormatTime(item.Best)))
		}
		if item.Runs > 0 {
			line += menuDimStyle.Render(fmt.Sprintf(", %d runs", item.Runs))
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = append(rows, menuDimStyle.Render("no games registered"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuBlobStyle.Render(menuBlob),
		"",
		menuTitleStyle.Render("B L O B   R U N"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		fmt.Sprintf("< Difficulty: %s >", m.DifficultyLabel()),
		"",
		menuDimStyle.Render("↑/↓ choose   ←/→ difficulty   enter play   tab scores   q quit"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen item, or nil until enter is pressed.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choicePlay {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// Difficulty returns the chosen preset name, empty for the config default.
func (m MenuModel) Difficulty() string {
	return string(menuDifficulties[m.difficulty])
}

// WithDifficulty preselects a preset by name. Unknown names are ignored.
func (m MenuModel) WithDifficulty(name string) MenuModel {
	for i, d := range menuDifficulties {
		if string(d) == name {
			m.difficulty = i
		}
	}
	return m
}

// DifficultyLabel is Difficulty for display.
func (m MenuModel) DifficultyLabel() string {
	if d := m.Difficulty(); d != "" {
		return d
	}
	return "config"
}

func (m MenuModel) IsQuitting() bool      { return m.choice == choiceQuit }
func (m MenuModel) WantsScoreboard() bool { return m.choice == choiceScores }

// Config returns the runtime config, resized to the last window size seen.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads a single line to sit in the middle of width cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what RunMenu reports back to the CLI loop.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), Difficulty: m.Difficulty()}
	switch m.choice {
	case choicePlay:
		res.GameID = m.Selected().GameID
	case choiceScores:
		res.WantsScoreboard = true
	default:
		// ctrl+c or a closed program.
		res.Quit = true
	}
	return res, nil
}
