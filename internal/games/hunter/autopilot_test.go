package hunter

import (
	"testing"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

func TestAutopilotWalksAndShoots(t *testing.T) {
	w := newTestWorld(t)
	in := Autopilot{}.Next(w)

	if !in.Has(core.ActionMoveRight) {
		t.Error("autopilot should walk right")
	}
	if !in.Has(core.ActionFire) {
		t.Error("autopilot should fire on tick 0")
	}
	if in.Has(core.ActionJump) {
		t.Error("nothing to jump over yet")
	}
}

func TestAutopilotJumpsThreat(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player.Rect
	w.Enemies.Add(&Enemy{Body: Body{Rect: groundedAt(w, p.Right()+60, 120, 120)}})

	if !(Autopilot{}).Next(w).Has(core.ActionJump) {
		t.Error("autopilot should jump a monster closing in")
	}

	w.Player.OnGround = false
	if (Autopilot{}).Next(w).Has(core.ActionJump) {
		t.Error("no jump while airborne")
	}
}

func TestAutopilotHoldsDistanceFromBoss(t *testing.T) {
	w := newTestWorld(t)
	boss := NewBoss(w.cfg.Boss, w.Camera, w.cfg.World.GroundHeight)
	boss.Rect.X = w.Player.Rect.Right() + 100
	w.Bosses.Add(boss)

	if (Autopilot{}).Next(w).Has(core.ActionMoveRight) {
		t.Error("autopilot should stop short of the boss")
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a := Simulate(newTestWorld(t), Autopilot{}, 2000)
	b := Simulate(newTestWorld(t), Autopilot{}, 2000)

	if a != b {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.Ticks == 0 || a.Ticks > 2000 {
		t.Errorf("ticks = %d", a.Ticks)
	}
	if a.State.Score == 0 {
		t.Error("a steady shooter should score something in 2000 ticks")
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	w := newTestWorld(t)
	w.gameOver()

	r := Simulate(w, Autopilot{}, 100)
	if r.Ticks != 0 || !r.State.GameOver {
		t.Errorf("result = %+v, expected an immediate stop", r)
	}
}
