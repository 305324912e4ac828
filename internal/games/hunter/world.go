package hunter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-hunter/internal/config"
	"github.com/vovakirdan/monster-hunter/internal/core"
)

// Frame reports what a single tick produced.
type Frame struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	Restarted bool
	Cues      []core.Cue // Audio triggers raised during the tick, in order
}

// World is everything one run owns: camera, entities and level progress.
// It is mutated in place by Step and never shared between goroutines.
type World struct {
	cfg     config.HunterConfig
	spawner *Spawner
	log     *log.Logger

	Camera       *Camera
	Player       *Player
	Enemies      Group[*Enemy]
	Advanced     Group[*AdvancedEnemy]
	Bosses       Group[*Boss]
	Bullets      Group[*Bullet]
	Collectibles Group[*Collectible]
	Level        LevelState

	prev   core.InputFrame
	tick   uint64
	paused bool
	cues   []core.Cue
}

// Option configures a World.
type Option func(*World)

// WithLogger routes progression events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.log = logger
		}
	}
}

// NewWorld creates a run at level 0. cfg must already be validated.
func NewWorld(cfg config.HunterConfig, seed int64, opts ...Option) *World {
	w := &World{
		cfg:  cfg,
		log:  log.New(io.Discard),
		prev: core.NewInputFrame(),
	}
	w.spawner = NewSpawner(seed, &w.cfg)
	w.Camera = NewCamera(cfg.Screen.Width, cfg.World.Width, cfg.Camera.Lerp)
	for _, opt := range opts {
		opt(w)
	}
	w.reset()
	return w
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.HunterConfig {
	return w.cfg
}

// Tick returns the number of simulated ticks since the run started.
func (w *World) Tick() uint64 {
	return w.tick
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	return w.paused
}

// State summarizes the run for the platform.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Player.Score,
		Level:    w.Level.Index,
		Phase:    w.Level.Phase.String(),
		GameOver: w.Level.Phase == PhaseGameOver,
		Victory:  w.Level.Phase == PhaseVictory,
		Paused:   w.paused,
	}
}

// Boss returns the live boss, if any.
func (w *World) Boss() (*Boss, bool) {
	return w.Bosses.First()
}

// reset puts every piece of run state back to its initial value.
// The random source is not reseeded.
func (w *World) reset() {
	w.Player = NewPlayer(w.cfg.Player, w.cfg.World.GroundHeight)
	w.Camera.Reset()
	w.clearEntities()
	w.Level = LevelState{}
	w.tick = 0
	w.paused = false
}

func (w *World) clearEntities() {
	w.Enemies.Clear()
	w.Advanced.Clear()
	w.Bosses.Clear()
	w.Bullets.Clear()
	w.Collectibles.Clear()
}

func (w *World) emit(c core.Cue) {
	w.cues = append(w.cues, c)
}

// Step advances the run by one tick. The order of the stages is fixed:
// input and motion, spawning, camera, culling, collisions, progression,
// message countdown.
func (w *World) Step(in core.InputFrame) Frame {
	prev := w.prev
	w.prev = in.Clone()
	w.cues = w.cues[:0]

	if in.Pressed(core.ActionRestart, prev) && w.Level.Restartable() {
		w.log.Info("run restarted", "from", w.Level.Phase, "score", w.Player.Score)
		w.reset()
		f := w.frame()
		f.Restarted = true
		return f
	}

	if in.Pressed(core.ActionPause, prev) && w.Level.Phase != PhaseGameOver {
		w.paused = !w.paused
	}
	if w.paused || w.Level.Phase == PhaseGameOver {
		return w.frame()
	}

	w.tick++
	playing := w.Level.Phase == PhasePlaying

	w.trackGuide(in)
	w.move(in, prev, playing)
	if playing {
		w.spawn()
	}
	w.Camera.Update(w.Player.Rect)
	w.cull()
	w.resolveCollisions()
	w.evaluate()

	if w.Level.Phase == PhasePlaying || w.Level.Phase == PhaseCleared {
		w.Level.Message.Tick()
	}
	return w.frame()
}

func (w *World) frame() Frame {
	var cues []core.Cue
	if len(w.cues) > 0 {
		cues = append(cues, w.cues...)
	}
	return Frame{
		Tick:   w.tick,
		Phase:  w.Level.Phase,
		Paused: w.paused,
		Cues:   cues,
	}
}

// trackGuide counts play time and idling near the start, which decide
// whether the movement hint is shown.
func (w *World) trackGuide(in core.InputFrame) {
	if w.Level.Phase != PhasePlaying {
		return
	}
	w.Level.PlayTicks++
	if !in.Has(core.ActionMoveRight) && w.Player.Rect.Right() < w.cfg.Timing.IdleZone {
		w.Level.IdleTicks++
	} else {
		w.Level.IdleTicks = 0
	}
}

// ShowGuide reports whether the "press right" hint is visible.
func (w *World) ShowGuide() bool {
	if w.Level.Phase != PhasePlaying {
		return false
	}
	t := w.cfg.Timing
	return w.Level.PlayTicks < t.GuideTicks || w.Level.IdleTicks > t.IdleTicks
}

// move fires, then moves every entity by one tick.
func (w *World) move(in, prev core.InputFrame, playing bool) {
	p := w.Player
	if playing && in.Pressed(core.ActionFire, prev) {
		w.Bullets.Add(NewBullet(p, w.cfg.Bullet))
		w.emit(core.CueShoot)
	}

	jumped := p.Update(moveOptions{
		left:   in.Has(core.ActionMoveLeft),
		right:  in.Has(core.ActionMoveRight),
		jump:   in.Pressed(core.ActionJump, prev),
		worldW: w.cfg.World.Width,
		ground: w.cfg.World.GroundHeight,
	})
	if jumped {
		w.emit(core.CueJump)
	}

	ground := w.cfg.World.GroundHeight
	ac := w.cfg.Advanced
	w.Enemies.Each(func(e *Enemy) { e.Update() })
	w.Advanced.Each(func(a *AdvancedEnemy) {
		a.Update(ac.JumpEvery, ac.JumpTimerMin, ac.JumpTimerMax, ground, w.spawner)
	})
	w.Bullets.Each(func(b *Bullet) { b.Update() })
	w.Collectibles.Each(func(c *Collectible) { c.Update() })
	if boss, ok := w.Bosses.First(); ok {
		if boss.Update(w.cfg.Boss, w.cfg.BossBullet, w.Camera, ground, playing) {
			w.log.Debug("boss volley", "bullets", boss.Bullets.Len(), "health", boss.Health, "tick", w.tick)
		}
	}
}

// spawn runs the monster and collectible timers of the active level.
func (w *World) spawn() {
	lvl := w.Level.Current(w.cfg.Levels)

	w.Level.SpawnTimer++
	if lvl.Collectibles {
		w.Level.CollectTimer++
	}

	if w.Level.SpawnTimer > lvl.Cadence {
		w.Level.SpawnTimer = 0
		switch lvl.Monster {
		case config.MonsterAdvanced:
			w.Advanced.Add(w.spawner.Advanced(w.Camera))
		default:
			w.Enemies.Add(w.spawner.Enemy(w.Camera))
		}
		w.log.Debug("monster spawned", "kind", lvl.Monster, "tick", w.tick)
	}

	if w.Level.CollectTimer > w.cfg.Collectible.Cadence {
		w.Level.CollectTimer = 0
		for _, kind := range w.spawner.Wave(w.Player) {
			w.Collectibles.Add(w.spawner.Collectible(w.Camera, kind))
		}
	}
}

// cull removes everything that left the visible window after the camera moved.
func (w *World) cull() {
	cam := w.Camera
	w.Enemies.RemoveIf(func(e *Enemy) bool { return cam.Behind(e.Rect) })
	w.Advanced.RemoveIf(func(a *AdvancedEnemy) bool { return cam.Behind(a.Rect) })
	w.Collectibles.RemoveIf(func(c *Collectible) bool { return cam.Behind(c.Rect) })
	w.Bullets.RemoveIf(func(b *Bullet) bool { return cam.Ahead(b.Rect) || cam.Behind(b.Rect) })
	if boss, ok := w.Bosses.First(); ok {
		boss.Bullets.RemoveIf(func(b *BossBullet) bool { return cam.Behind(b.Rect) })
	}
}

// evaluate runs the level state machine once.
func (w *World) evaluate() {
	levels := w.cfg.Levels
	switch w.Level.Phase {
	case PhasePlaying:
		lvl := w.Level.Current(levels)
		if lvl.Boss {
			if !w.Level.BossSpawned {
				w.Bosses.Add(NewBoss(w.cfg.Boss, w.Camera, w.cfg.World.GroundHeight))
				w.Level.BossSpawned = true
				w.log.Info("boss spawned", "level", w.Level.Index)
			} else if w.Bosses.Empty() {
				w.victory()
			}
			return
		}
		if w.Player.Score >= lvl.ScoreToClear {
			if w.Level.IsLast(levels) {
				w.victory()
				return
			}
			w.Level.Phase = PhaseCleared
			w.Level.HoldTicks = w.cfg.Timing.ClearHold
			w.Level.show(MsgLevelCleared, w.cfg.Timing.ClearHold)
			w.log.Info("level cleared", "level", w.Level.Index, "score", w.Player.Score)
		}
	case PhaseCleared:
		w.Level.HoldTicks--
		if w.Level.HoldTicks <= 0 {
			w.clearEntities()
			w.Level.advance()
			w.log.Info("level started", "level", w.Level.Index, "name", w.Level.Current(levels).Name)
		}
	}
}

func (w *World) victory() {
	w.Level.Phase = PhaseVictory
	w.Collectibles.Clear()
	w.Level.CollectTimer = 0
	w.Level.show(MsgVictory, w.cfg.Timing.FinalMessage)
	w.log.Info("victory", "score", w.Player.Score, "ticks", w.tick)
}

func (w *World) gameOver() {
	w.Level.Phase = PhaseGameOver
	w.Level.show(MsgGameOver, w.cfg.Timing.FinalMessage)
	w.log.Info("game over", "level", w.Level.Index, "score", w.Player.Score)
}
