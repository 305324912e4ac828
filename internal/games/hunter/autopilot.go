package hunter

import "github.com/vovakirdan/monster-hunter/internal/core"

// Autopilot tuning
const (
	pilotFireEvery = 6   // Ticks between trigger presses
	pilotJumpRange = 140 // Jump when a threat is this close ahead of the player
	pilotBossGap   = 260 // Keep this far from the boss's left edge
)

// Autopilot plays the game with fixed reflexes for headless runs:
// walk right, shoot steadily, and hop over whatever gets close.
// It only reads the world and is deterministic.
type Autopilot struct{}

// Next returns the input for the coming tick of w.
func (Autopilot) Next(w *World) core.InputFrame {
	in := core.NewInputFrame()
	if w.Paused() {
		return in
	}

	p := w.Player.Bounds()
	if boss, ok := w.Boss(); !ok || boss.Rect.Left()-p.Right() > pilotBossGap {
		in.Set(core.ActionMoveRight)
	}

	// Presses on separated ticks so each one is a fresh edge.
	if w.Tick()%pilotFireEvery == 0 {
		in.Set(core.ActionFire)
	}

	if w.Player.OnGround && threatAhead(w, p) {
		in.Set(core.ActionJump)
	}
	return in
}

// threatAhead reports a monster or boss bullet closing in at player height.
func threatAhead(w *World, p core.Rect) bool {
	near := func(r core.Rect) bool {
		gap := r.Left() - p.Right()
		return gap >= 0 && gap < pilotJumpRange && r.Bottom() > p.Y
	}
	for _, e := range w.Enemies.Items() {
		if near(e.Rect) {
			return true
		}
	}
	for _, e := range w.Advanced.Items() {
		if near(e.Rect) {
			return true
		}
	}
	if boss, ok := w.Boss(); ok {
		for _, b := range boss.Bullets.Items() {
			if near(b.Rect) {
				return true
			}
		}
	}
	return false
}

// RunResult summarizes a headless run.
type RunResult struct {
	Ticks int
	State core.GameState
	Hash  uint64
}

// Simulate drives w with pilot for at most maxTicks ticks or until the run ends.
func Simulate(w *World, pilot Autopilot, maxTicks int) RunResult {
	n := 0
	for ; n < maxTicks; n++ {
		if w.State().Finished() {
			break
		}
		w.Step(pilot.Next(w))
	}
	snap := w.Snapshot()
	return RunResult{
		Ticks: n,
		State: w.State(),
		Hash:  snap.Hash(),
	}
}
