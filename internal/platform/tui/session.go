package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/registry"
	"github.com/vovakirdan/blobrun/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel drives one remote player from the menu into a game or the
// scoreboard and back. The child models each end with tea.Quit when run on
// their own; inside a session that only means "return to the menu".
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	logger   *log.Logger
	now      func() time.Time

	screen     sessionScreen
	menu       MenuModel
	game       *Model
	scoreboard *ScoreboardModel
	difficulty string // kept across menu visits
	done       bool
}

// NewSessionModel starts a session at the menu. store may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		logger:   logger,
		now:      time.Now,
		menu:     NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.screen {
	case screenGame:
		next, cmd := m.game.Update(msg)
		g := next.(Model)
		m.game = &g
		switch {
		case g.IsQuitting():
			return m.quit()
		case g.BackToMenu():
			return m.openMenu()
		}
		return m, cmd

	case screenScores:
		next, cmd := m.scoreboard.Update(msg)
		sb := next.(ScoreboardModel)
		m.scoreboard = &sb
		switch {
		case sb.IsQuitting():
			return m.quit()
		case sb.IsGoingBack():
			return m.openMenu()
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	m.difficulty = m.menu.Difficulty()
	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		return m.openScores()
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot create game", "game", id, "error", err)
		return m.openMenu()
	}

	cfg := m.config
	cfg.Seed = m.now().UnixNano()
	gm := NewModel(game, m.store, cfg, Options{
		Difficulty: m.difficulty,
		Logger:     m.logger,
	})
	m.game = &gm
	m.screen = screenGame
	m.logger.Info("game started", "user", m.username, "game", id, "seed", cfg.Seed, "difficulty", m.difficulty)
	return m, gm.Init()
}

func (m SessionModel) openScores() (tea.Model, tea.Cmd) {
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
	m.screen = screenScores
	return m, sb.Init()
}

// openMenu rebuilds the menu so best times include the run just played.
func (m SessionModel) openMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.scoreboard = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config).WithDifficulty(m.difficulty)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	switch {
	case m.done:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
