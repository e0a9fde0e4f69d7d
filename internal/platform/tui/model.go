package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/registry"
	"github.com/vovakirdan/blobrun/internal/storage"
)

// Options control how a Model hosts its game.
type Options struct {
	// Difficulty is recorded with every saved run.
	Difficulty string

	// AutoRestart starts a new run on the tick the player is caught
	// instead of waiting for R.
	AutoRestart bool

	// KeepSeed replays the same level on every restart.
	KeepSeed bool

	// InitialHold and RepeatHold tune the held-key latch. Zero means the
	// package defaults.
	InitialHold time.Duration
	RepeatHold  time.Duration

	// Logger receives persistence errors. Nil discards them.
	Logger *log.Logger
}

// statsReporter is implemented by games that can describe the run in
// progress for the run history.
type statsReporter interface {
	RunStats() core.RunStats
}

// resizer is implemented by games that can change their viewport without
// starting a new run.
type resizer interface {
	Resize(w, h int)
}

// difficultySetter is implemented by games that take a per-instance
// difficulty preset.
type difficultySetter interface {
	SetDifficulty(name string)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper
	held      *HeldKeys
	pending   core.InputFrame // one-shot actions for the next tick
	gameState core.GameState
	clock     func() time.Time

	quitting   bool
	backToMenu bool
	runSaved   bool // run history written for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.InitialHold <= 0 {
		opts.InitialHold = DefaultInitialHold
	}
	if opts.RepeatHold <= 0 {
		opts.RepeatHold = DefaultRepeatHold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if ds, ok := game.(difficultySetter); ok && opts.Difficulty != "" {
		ds.SetDifficulty(opts.Difficulty)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(opts.InitialHold, opts.RepeatHold),
		pending:   core.NewInputFrame(),
		clock:     time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRun(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.held.Press(action, m.clock())
	case core.ActionPause, core.ActionRestart:
		m.pending.Set(action)
	case core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.pending.Set(core.ActionPause)
			break
		}
		m.finishRun(storage.EndQuit)
		m.backToMenu = true
		// Ends a standalone program; a session swaps the menu back in.
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	// Games without a resizable view start over with the same level.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.pending.Has(core.ActionRestart) {
		m.finishRun(storage.EndQuit)
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	m.held.Apply(&frame, now)

	result := m.game.Step(frame)
	m.gameState = result.State
	m.pending.Clear()

	if result.Restart {
		m.finishRun(storage.EndCaught)
		if m.opts.AutoRestart {
			m.restart()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run, with a fresh level unless KeepSeed is set.
func (m *Model) restart() {
	if !m.opts.KeepSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.held.Reset()
	m.pending.Clear()
}

// finishRun records the current run once. Runs that never ticked are not
// recorded.
func (m *Model) finishRun(reason string) {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	state := m.game.State()
	rec := storage.RunRecord{
		GameID:     m.game.ID(),
		Seed:       m.config.Seed,
		Score:      state.Score,
		Difficulty: m.opts.Difficulty,
		EndReason:  reason,
	}

	if sr, ok := m.game.(statsReporter); ok {
		stats := sr.RunStats()
		if stats.Ticks == 0 {
			return
		}
		rec.Seed = stats.Seed
		rec.Ticks = stats.Ticks
		rec.Tiles = stats.Tiles
		rec.Skipped = stats.Skipped

		if _, err := m.store.SaveRun(rec); err != nil {
			m.opts.Logger.Error("could not save run", "game", rec.GameID, "error", err)
		}
		return
	}

	if state.Score > 0 {
		if _, err := m.store.SaveScore(rec.GameID, state.Score); err != nil {
			m.opts.Logger.Error("could not save score", "game", rec.GameID, "error", err)
		}
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.blobrun/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".blobrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
