// Package hunter implements Monster Hunter, a side-scrolling shooter.
// The player runs right through a world wider than the screen, shooting
// monsters and collecting pickups, through two score-gated levels and a
// final boss fight.
//
// World holds the deterministic simulation and produces a draw list;
// Game adapts it to the terminal platform.
package hunter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-hunter/internal/config"
	"github.com/vovakirdan/monster-hunter/internal/core"
)

// Game implements the platform-facing game lifecycle on top of World.
type Game struct {
	cfg     config.HunterConfig
	logger  *log.Logger
	runtime core.RuntimeConfig
	world   *World
}

// New creates a game that runs with cfg. A nil logger discards output.
func New(cfg config.HunterConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hunter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Monster Hunter"
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, runtime.Seed, WithLogger(g.logger))
	g.logger.Debug("run started", "seed", runtime.Seed, "levels", len(g.cfg.Levels))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	f := g.world.Step(in)
	return core.StepResult{State: g.State(), Cues: f.Cues}
}

// Render rasterizes the current frame, scaling the pixel screen onto dst.
func (g *Game) Render(dst *core.Screen) {
	rz := rasterizer{
		dst:     dst,
		pxW:     g.cfg.Screen.Width,
		pxH:     g.cfg.Screen.Height,
		groundY: g.cfg.World.GroundHeight,
		cols:    dst.Width(),
		rows:    dst.Height(),
	}
	if rz.cols <= 0 || rz.rows <= 0 {
		return
	}
	rz.draw(g.world.DrawList())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// World exposes the simulation, mainly for tests and headless runs.
func (g *Game) World() *World {
	return g.world
}
