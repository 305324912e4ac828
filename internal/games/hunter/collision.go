package hunter

import "github.com/vovakirdan/monster-hunter/internal/core"

// resolveCollisions runs the four collision passes in their fixed order.
// Later passes are skipped once the run is lost.
func (w *World) resolveCollisions() {
	w.resolveBullets()
	w.resolveContact()
	if w.Level.Phase == PhaseGameOver {
		return
	}
	w.resolveBossBullets()
	if w.Level.Phase == PhaseGameOver {
		return
	}
	w.resolvePickups()
}

// resolveBullets tests each player bullet against every monster kind.
// A bullet is consumed once no matter how many targets it touched.
func (w *World) resolveBullets() {
	sc := w.cfg.Scoring
	dmg := w.cfg.Damage

	w.Bullets.RemoveIf(func(b *Bullet) bool {
		r := b.Bounds()
		hit := false

		// Basic kills score once per bullet, however many it cut down.
		if n := w.Enemies.RemoveIf(overlaps[*Enemy](r)); n > 0 {
			hit = true
			w.Player.Score += sc.EnemyKill
			w.emit(core.CueEnemyHit)
		}

		if struck := w.Advanced.Overlapping(r); len(struck) > 0 {
			hit = true
			w.emit(core.CueEnemyHit)
			for _, a := range struck {
				a.Health -= dmg.BulletVsAdvanced
				if a.Health <= 0 {
					w.Player.Score += sc.AdvancedKill
				}
			}
			w.Advanced.RemoveIf(func(a *AdvancedEnemy) bool { return a.Health <= 0 })
		}

		if boss, ok := w.Bosses.First(); ok && boss.Bounds().Intersects(r) {
			hit = true
			w.emit(core.CueEnemyHit)
			boss.Health = max(0, boss.Health-dmg.BulletVsBoss)
			w.Player.Score += sc.BossHit
			if boss.Health == 0 {
				boss.Bullets.Clear()
				w.Bosses.Clear()
				w.Player.Score += sc.BossDefeat
				w.log.Info("boss defeated", "score", w.Player.Score)
			}
		}
		return hit
	})
}

// resolveContact handles grounded body contact with monsters. Basic
// monsters are checked first; advanced ones only when no basic one touched.
func (w *World) resolveContact() {
	p := w.Player
	if !p.OnGround {
		return
	}
	r := p.Bounds()
	n := w.Enemies.RemoveIf(overlaps[*Enemy](r))
	if n == 0 {
		n = w.Advanced.RemoveIf(overlaps[*AdvancedEnemy](r))
	}
	if n > 0 {
		w.hurt(w.cfg.Damage.MonsterContact)
	}
}

// resolveBossBullets applies every boss bullet touching the player.
func (w *World) resolveBossBullets() {
	boss, ok := w.Bosses.First()
	if !ok {
		return
	}
	r := w.Player.Bounds()
	boss.Bullets.RemoveIf(func(b *BossBullet) bool {
		if w.Level.Phase == PhaseGameOver || !b.Bounds().Intersects(r) {
			return false
		}
		w.hurt(w.cfg.Damage.BossBullet)
		return true
	})
}

// resolvePickups consumes every collectible the player touches. A pickup
// whose stat is already full is still consumed.
func (w *World) resolvePickups() {
	p := w.Player
	dmg := w.cfg.Damage
	for _, c := range w.Collectibles.Overlapping(p.Bounds()) {
		w.emit(core.CueCollect)
		switch c.Kind {
		case CollectHealth:
			p.Heal(dmg.HealthPickup)
		case CollectLife:
			p.GainLife(dmg.LifePickup)
		default:
			p.Score += w.cfg.Scoring.ScorePickup
		}
	}
	w.Collectibles.RemoveIf(overlaps[*Collectible](p.Bounds()))
}

// hurt damages the player and ends the run when the last life goes.
func (w *World) hurt(dmg int) {
	w.emit(core.CuePlayerHit)
	if w.Player.Damage(dmg) {
		w.gameOver()
	}
}

// overlaps builds a removal predicate for entities touching r.
func overlaps[T Bounded](r core.Rect) func(T) bool {
	return func(e T) bool {
		return e.Bounds().Intersects(r)
	}
}
