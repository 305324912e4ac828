package hunter

import (
	"math/rand"

	"github.com/vovakirdan/monster-hunter/internal/config"
	"github.com/vovakirdan/monster-hunter/internal/core"
)

// Spawner creates monsters and pickups just ahead of the camera.
// All randomness in a run comes from its seeded source, so a seed and an
// input sequence replay the same run.
type Spawner struct {
	rng *rand.Rand
	cfg *config.HunterConfig
}

// NewSpawner creates a spawner with a deterministic random source.
func NewSpawner(seed int64, cfg *config.HunterConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Between returns a random value in [lo, hi], both inclusive.
func (s *Spawner) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// spawnX picks the horizontal center for a new entity past the right edge.
func (s *Spawner) spawnX(cam *Camera) int {
	return cam.RightEdge() + s.Between(0, s.cfg.World.SpawnJitter)
}

// Enemy creates a basic monster on the ground ahead of the camera.
func (s *Spawner) Enemy(cam *Camera) *Enemy {
	ec := s.cfg.Enemy
	x := s.spawnX(cam)
	return &Enemy{
		Body:  Body{Rect: core.RectMidBottom(x, s.cfg.World.GroundHeight, ec.Width, ec.Height)},
		Speed: s.Between(ec.MinSpeed, ec.MaxSpeed),
	}
}

// Advanced creates an advanced monster on the ground ahead of the camera.
func (s *Spawner) Advanced(cam *Camera) *AdvancedEnemy {
	ac := s.cfg.Advanced
	x := s.spawnX(cam)
	return &AdvancedEnemy{
		Body:      Body{Rect: core.RectMidBottom(x, s.cfg.World.GroundHeight, ac.Width, ac.Height)},
		Jumper:    NewJumper(ac.JumpHeight, ac.Gravity),
		Speed:     s.Between(ac.MinSpeed, ac.MaxSpeed),
		Health:    ac.MaxHealth,
		MaxHealth: ac.MaxHealth,
		JumpTimer: s.Between(ac.JumpTimerMin, ac.JumpTimerMax),
	}
}

// Collectible creates a pickup of the given kind at a jumpable height.
func (s *Spawner) Collectible(cam *Camera, kind CollectibleKind) *Collectible {
	cc := s.cfg.Collectible
	x := s.spawnX(cam)
	bottom := s.cfg.World.GroundHeight - s.Between(cc.MinRise, cc.MaxRise)
	return &Collectible{
		Body:  Body{Rect: core.RectMidBottom(x, bottom, cc.Width, cc.Height)},
		Kind:  kind,
		Speed: cc.Speed,
	}
}

// Wave decides which pickups the next collectible wave carries.
// A missing life comes first, then one or more health pickups while health
// is missing, and any slot left over is filled with score.
func (s *Spawner) Wave(p *Player) []CollectibleKind {
	slots := s.cfg.Collectible.PerWave
	kinds := make([]CollectibleKind, 0, slots)

	if p.Lives < p.MaxLives && len(kinds) < slots {
		kinds = append(kinds, CollectLife)
	}
	if p.Health < p.MaxHealth && len(kinds) < slots {
		n := s.Between(1, slots-len(kinds))
		for range n {
			kinds = append(kinds, CollectHealth)
		}
	}
	for len(kinds) < slots {
		kinds = append(kinds, CollectScore)
	}
	return kinds
}
