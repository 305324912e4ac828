package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c HunterConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"world.width", c.World.Width},
		{"world.ground_height", c.World.GroundHeight},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"player.max_health", c.Player.MaxHealth},
		{"player.max_lives", c.Player.MaxLives},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"advanced_enemy.width", c.Advanced.Width},
		{"advanced_enemy.height", c.Advanced.Height},
		{"advanced_enemy.max_health", c.Advanced.MaxHealth},
		{"boss.width", c.Boss.Width},
		{"boss.height", c.Boss.Height},
		{"boss.max_health", c.Boss.MaxHealth},
		{"bullet.speed", c.Bullet.Speed},
		{"boss_bullet.speed", c.BossBullet.Speed},
		{"collectible.cadence", c.Collectible.Cadence},
		{"timing.clear_hold", c.Timing.ClearHold},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if c.World.Width < c.Screen.Width {
		return fmt.Errorf("%w: world.width %d is narrower than screen.width %d", ErrInvalid, c.World.Width, c.Screen.Width)
	}
	if c.Camera.Lerp <= 0 || c.Camera.Lerp > 1 {
		return fmt.Errorf("%w: camera.lerp must be in (0, 1], got %g", ErrInvalid, c.Camera.Lerp)
	}
	if c.Player.JumpHeight <= 0 || c.Player.Gravity <= 0 {
		return fmt.Errorf("%w: player jump_height and gravity must be positive", ErrInvalid)
	}
	if c.Enemy.MinSpeed > c.Enemy.MaxSpeed {
		return fmt.Errorf("%w: enemy.min_speed exceeds max_speed", ErrInvalid)
	}
	if c.Advanced.MinSpeed > c.Advanced.MaxSpeed {
		return fmt.Errorf("%w: advanced_enemy.min_speed exceeds max_speed", ErrInvalid)
	}
	if c.Advanced.JumpTimerMin > c.Advanced.JumpTimerMax {
		return fmt.Errorf("%w: advanced_enemy.jump_timer_min exceeds jump_timer_max", ErrInvalid)
	}
	if c.Collectible.MinRise > c.Collectible.MaxRise {
		return fmt.Errorf("%w: collectible.min_rise exceeds max_rise", ErrInvalid)
	}
	if c.World.SpawnJitter < 0 {
		return fmt.Errorf("%w: world.spawn_jitter must not be negative", ErrInvalid)
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalid)
	}
	for i, lvl := range c.Levels {
		if lvl.Monster != MonsterEnemy && lvl.Monster != MonsterAdvanced {
			return fmt.Errorf("%w: levels[%d].monster %q is not %q or %q", ErrInvalid, i, lvl.Monster, MonsterEnemy, MonsterAdvanced)
		}
		if lvl.Cadence <= 0 {
			return fmt.Errorf("%w: levels[%d].cadence must be positive", ErrInvalid, i)
		}
		if !lvl.Boss && lvl.ScoreToClear <= 0 {
			return fmt.Errorf("%w: levels[%d] needs a boss or a score_to_clear", ErrInvalid, i)
		}
	}
	return nil
}
