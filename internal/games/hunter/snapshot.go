package hunter

import "math"

// Snapshot is a flat, primitive-only copy of the run state, used to
// compare runs for determinism.
type Snapshot struct {
	Tick    uint64
	Offset  int // Camera offset in 1/1000 pixels
	Level   int
	Phase   string
	Message string

	PlayerX, PlayerY int
	PlayerVY         int // Vertical velocity in 1/1000 pixels per tick
	Health, Lives    int
	Score            int

	// Each enemy is 3 ints: X, Y, Speed
	EnemyData []int
	// Each advanced enemy is 5 ints: X, Y, Speed, Health, JumpTimer
	AdvancedData []int
	// Each bullet is 2 ints: X, Y
	BulletData []int
	// Each collectible is 3 ints: X, Y, Kind
	CollectibleData []int
	// The boss is 5 ints: X, Y, Health, JumpTimer, ShootTimer, then 2 per bullet
	BossData []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot captures the current run state.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	snap := Snapshot{
		Tick:     w.tick,
		Offset:   milli(w.Camera.Offset()),
		Level:    w.Level.Index,
		Phase:    w.Level.Phase.String(),
		Message:  w.Level.Message.Text,
		PlayerX:  p.Rect.X,
		PlayerY:  p.Rect.Y,
		PlayerVY: milli(p.VelocityY),
		Health:   p.Health,
		Lives:    p.Lives,
		Score:    p.Score,
	}

	w.Enemies.Each(func(e *Enemy) {
		snap.EnemyData = append(snap.EnemyData, e.Rect.X, e.Rect.Y, e.Speed)
	})
	w.Advanced.Each(func(a *AdvancedEnemy) {
		snap.AdvancedData = append(snap.AdvancedData, a.Rect.X, a.Rect.Y, a.Speed, a.Health, a.JumpTimer)
	})
	w.Bullets.Each(func(b *Bullet) {
		snap.BulletData = append(snap.BulletData, b.Rect.X, b.Rect.Y)
	})
	w.Collectibles.Each(func(c *Collectible) {
		snap.CollectibleData = append(snap.CollectibleData, c.Rect.X, c.Rect.Y, int(c.Kind))
	})
	if boss, ok := w.Bosses.First(); ok {
		snap.BossData = append(snap.BossData, boss.Rect.X, boss.Rect.Y, boss.Health, boss.JumpTimer, boss.ShootTimer)
		boss.Bullets.Each(func(b *BossBullet) {
			snap.BossData = append(snap.BossData, b.Rect.X, b.Rect.Y)
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Offset)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation

	for _, s := range []string{snap.Phase, snap.Message} {
		for _, r := range s {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}

	for _, data := range [][]int{snap.EnemyData, snap.AdvancedData, snap.BulletData, snap.CollectibleData, snap.BossData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
