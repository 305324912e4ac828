package hunter

import "github.com/vovakirdan/monster-hunter/internal/core"

// Jumper holds the vertical state of an entity that follows a gravity arc.
// Integration is one Euler step per tick; arcs must match tick for tick.
type Jumper struct {
	VelocityY  float64 // Upward velocity in pixels per tick
	OnGround   bool
	JumpHeight float64 // Initial upward velocity of a jump
	Gravity    float64 // Velocity lost per tick
}

// NewJumper returns a grounded jumper with the given arc.
func NewJumper(jumpHeight, gravity float64) Jumper {
	return Jumper{OnGround: true, JumpHeight: jumpHeight, Gravity: gravity}
}

// Jump starts an arc. It does nothing in the air.
func (j *Jumper) Jump() bool {
	if !j.OnGround {
		return false
	}
	j.OnGround = false
	j.VelocityY = j.JumpHeight
	return true
}

// Fall advances the arc by one tick and snaps r to ground on landing.
// It returns true on the tick the entity lands.
func (j *Jumper) Fall(r *core.Rect, ground int) bool {
	if j.OnGround {
		return false
	}
	r.Y = int(float64(r.Y) - j.VelocityY)
	j.VelocityY -= j.Gravity

	if r.Bottom() >= ground {
		r.SetBottom(ground)
		j.OnGround = true
		j.VelocityY = 0
		return true
	}
	return false
}

// Dice is the random source entity updates draw from.
type Dice interface {
	// Between returns a value in [lo, hi], both inclusive.
	Between(lo, hi int) int
}

// moveOptions tells the player update which controls are live this tick.
type moveOptions struct {
	left, right bool
	jump        bool // Rising edge of the jump key
	worldW      int
	ground      int
}

// Update applies held movement keys and the jump edge, then gravity.
// It returns true when a jump started.
func (p *Player) Update(opt moveOptions) bool {
	if opt.left && p.Rect.Left() > 0 {
		p.Rect.X -= p.Speed
	}
	if opt.right && p.Rect.Right() < opt.worldW {
		p.Rect.X += p.Speed
	}
	p.Rect.X = core.Clamp(p.Rect.X, 0, max(0, opt.worldW-p.Rect.W))

	jumped := false
	if opt.jump {
		jumped = p.Jump()
	}
	p.Fall(&p.Rect, opt.ground)
	return jumped
}

// Update drifts the enemy left.
func (e *Enemy) Update() {
	e.Rect.X -= e.Speed
}

// Update drifts the enemy left and hops on its timer. The timer is
// re-rolled from dice every time the enemy lands.
func (a *AdvancedEnemy) Update(jumpEvery, timerMin, timerMax, ground int, dice Dice) {
	a.Rect.X -= a.Speed

	a.JumpTimer++
	if a.JumpTimer >= jumpEvery && a.OnGround {
		a.Jump()
		a.JumpTimer = 0
	}
	if a.Fall(&a.Rect, ground) {
		a.JumpTimer = dice.Between(timerMin, timerMax)
	}
}

// Update drifts the bullet right.
func (b *Bullet) Update() {
	b.Rect.X += b.Speed
}

// Update drifts the bullet left.
func (b *BossBullet) Update() {
	b.Rect.X -= b.Speed
}

// Update drifts the pickup left.
func (c *Collectible) Update() {
	c.Rect.X -= c.Speed
}
