package hunter

import (
	"github.com/vovakirdan/monster-hunter/internal/config"
	"github.com/vovakirdan/monster-hunter/internal/core"
)

// Body is the world-space rectangle every entity carries.
type Body struct {
	Rect core.Rect
}

// Bounds returns the collision rectangle.
func (b *Body) Bounds() core.Rect {
	return b.Rect
}

// Player is the hunter. There is exactly one per run.
type Player struct {
	Body
	Jumper
	Speed     int
	Health    int
	MaxHealth int
	Lives     int
	MaxLives  int
	Score     int
}

// NewPlayer places a fresh player on the ground at its start position.
func NewPlayer(cfg config.PlayerConfig, ground int) *Player {
	return &Player{
		Body:      Body{Rect: core.RectMidBottom(cfg.StartX, ground, cfg.Width, cfg.Height)},
		Jumper:    NewJumper(cfg.JumpHeight, cfg.Gravity),
		Speed:     cfg.Speed,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Lives:     cfg.MaxLives,
		MaxLives:  cfg.MaxLives,
	}
}

// Damage removes dmg health. When health runs out a life is spent and
// health refills. It returns true when the last life is gone.
func (p *Player) Damage(dmg int) bool {
	p.Health -= dmg
	if p.Health <= 0 {
		p.Lives = max(0, p.Lives-1)
		p.Health = p.MaxHealth
	}
	return p.Lives == 0
}

// Heal restores health up to the maximum.
func (p *Player) Heal(n int) {
	p.Health = min(p.MaxHealth, p.Health+n)
}

// GainLife restores lives up to the maximum.
func (p *Player) GainLife(n int) {
	p.Lives = min(p.MaxLives, p.Lives+n)
}

// Enemy is a basic monster that dies to a single bullet.
type Enemy struct {
	Body
	Speed int
}

// AdvancedEnemy is a monster that takes several hits and hops periodically.
type AdvancedEnemy struct {
	Body
	Jumper
	Speed     int
	Health    int
	MaxHealth int
	JumpTimer int
}

// Boss is the final monster. It owns the bullets it fires.
type Boss struct {
	Body
	Jumper
	Speed      int
	Health     int
	MaxHealth  int
	JumpTimer  int
	ShootTimer int
	Bullets    Group[*BossBullet]
}

// NewBoss places the boss on the ground just past the right screen edge.
func NewBoss(cfg config.BossConfig, cam *Camera, ground int) *Boss {
	return &Boss{
		Body:      Body{Rect: core.RectMidBottom(cam.RightEdge()+cfg.SpawnAhead, ground, cfg.Width, cfg.Height)},
		Jumper:    NewJumper(cfg.JumpHeight, cfg.Gravity),
		Speed:     cfg.Speed,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
	}
}

// Update approaches until the boss is stopDistance inside the right edge,
// hops and fires on its timers, and moves its bullets. Firing is skipped
// when fire is false. It returns true when a volley was fired.
func (b *Boss) Update(cfg config.BossConfig, bullet config.ProjectileConfig, cam *Camera, ground int, fire bool) bool {
	if b.Rect.Left() > cam.RightEdge()-cfg.StopDistance {
		b.Rect.X -= b.Speed
	}

	b.JumpTimer++
	if b.JumpTimer >= cfg.JumpEvery && b.OnGround {
		b.Jump()
		b.JumpTimer = 0
	}
	b.Fall(&b.Rect, ground)

	fired := false
	if fire {
		b.ShootTimer++
		if b.ShootTimer >= cfg.ShootEvery {
			b.Shoot(cfg, bullet)
			b.ShootTimer = 0
			fired = true
		}
	}

	b.Bullets.Each(func(bb *BossBullet) { bb.Update() })
	return fired
}

// Shoot fires a vertical spread of bullets from the boss's left edge.
func (b *Boss) Shoot(cfg config.BossConfig, bullet config.ProjectileConfig) {
	half := (cfg.Spread - 1) / 2
	for i := range cfg.Spread {
		y := b.Rect.Bottom() - cfg.MuzzleRise + (i-half)*cfg.SpreadGap
		b.Bullets.Add(&BossBullet{
			Body:  Body{Rect: core.RectCenter(b.Rect.Left(), y, bullet.Width, bullet.Height)},
			Speed: bullet.Speed,
		})
	}
}

// Bullet is fired by the player and travels right.
type Bullet struct {
	Body
	Speed int
}

// NewBullet centers a bullet on the player's right edge.
func NewBullet(p *Player, cfg config.ProjectileConfig) *Bullet {
	x, y := p.Rect.MidRight()
	return &Bullet{
		Body:  Body{Rect: core.RectCenter(x, y, cfg.Width, cfg.Height)},
		Speed: cfg.Speed,
	}
}

// BossBullet is fired by the boss and travels left.
type BossBullet struct {
	Body
	Speed int
}

// CollectibleKind selects what a pickup restores.
type CollectibleKind int

const (
	CollectScore CollectibleKind = iota
	CollectHealth
	CollectLife
)

// String returns the kind name.
func (k CollectibleKind) String() string {
	switch k {
	case CollectHealth:
		return "health"
	case CollectLife:
		return "life"
	case CollectScore:
		return "score"
	default:
		return "unknown"
	}
}

// Collectible is a pickup drifting left at a jumpable height.
type Collectible struct {
	Body
	Kind  CollectibleKind
	Speed int
}
