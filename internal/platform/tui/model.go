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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-hunter/internal/core"
	"github.com/vovakirdan/monster-hunter/internal/games/hunter"
	"github.com/vovakirdan/monster-hunter/internal/storage"
)

// CuePlayer plays audio cues without blocking the tick.
type CuePlayer interface {
	Play(cues ...core.Cue)
}

// Options are the optional collaborators of a run.
type Options struct {
	Store      *storage.Store // Run history; nil disables saving
	Sound      CuePlayer      // nil runs silent
	Logger     *log.Logger    // nil discards
	Difficulty string         // Recorded with each saved run
}

// Model is the Bubble Tea model for a Monster Hunter session.
type Model struct {
	game      *hunter.Game
	screen    *core.Screen
	store     *storage.Store
	sound     CuePlayer
	logger    *log.Logger
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	held      heldInput
	gameState core.GameState
	best      int  // Best recorded score, shown beside the key help
	quitting  bool
	runSaved  bool // Whether the current finished run has been recorded
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a new Bubble Tea model for the game.
func NewModel(game *hunter.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	best := 0
	if opts.Store != nil {
		var err error
		if best, err = opts.Store.HighScore(); err != nil {
			opts.Logger.Warn("cannot read high score", "err", err)
		}
	}

	return Model{
		best:   best,
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:  opts.Store,
		sound:  opts.Sound,
		logger: opts.Logger,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   newHeldInput(ticksFor(moveHold, cfg.TickRate)),
	}
}

// playfieldHeight leaves the bottom row for the key help.
func playfieldHeight(h int) int {
	return max(1, h-1)
}

// Init starts the tick loop. The game must already be Reset.
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		if !m.runSaved && !m.gameState.Finished() {
			m.saveRun(storage.OutcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}
	m.held.press(action)
	return m, nil
}

// handleResize processes window resize events.
// The world is laid out in pixels, so only the terminal buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasFinished := m.gameState.Finished()

	result := m.game.Step(m.held.next())
	m.gameState = result.State
	if m.sound != nil && len(result.Cues) > 0 {
		m.sound.Play(result.Cues...)
	}

	// A restart left the terminal phase; the next finish is a new run.
	if wasFinished && !m.gameState.Finished() {
		m.runSaved = false
		m.held.reset()
	}

	// Save the run on game over or victory (once)
	if m.gameState.Finished() && !m.runSaved {
		outcome := storage.OutcomeGameOver
		if m.gameState.Victory {
			outcome = storage.OutcomeVictory
		}
		m.saveRun(outcome)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run. Failures are logged and the game continues.
func (m *Model) saveRun(outcome string) {
	m.runSaved = true
	ticks := int(m.game.World().Tick()) //#nosec G115 -- tick count fits in int
	if m.store == nil || ticks == 0 {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Score:      m.gameState.Score,
		Level:      m.gameState.Level,
		Outcome:    outcome,
		Ticks:      ticks,
		Seed:       m.config.Seed,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "outcome", outcome, "score", m.gameState.Score)
	m.best = max(m.best, m.gameState.Score)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".hunter", "screenshots")
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
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	status := m.help.View(m.keys)
	if m.best > 0 {
		status += fmt.Sprintf("  •  best %d", m.best)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game, which is reset first.
func Run(game *hunter.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	game.Reset(model.config)
	model.gameState = game.State()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
