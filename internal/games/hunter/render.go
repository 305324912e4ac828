package hunter

import (
	"fmt"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

// Layer orders draw commands back to front.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPlayer
	LayerEnemy
	LayerAdvanced
	LayerBullet
	LayerCollectible
	LayerBoss
	LayerBossBullet
	LayerHUD
	LayerMessage
)

// Sprite is an opaque image handle. The renderer decides what it looks like.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpriteBackground
	SpritePlayer
	SpriteEnemy
	SpriteAdvanced
	SpriteBoss
	SpriteBullet
	SpriteBossBullet
	SpriteHealth
	SpriteLife
	SpriteScore
)

// DrawKind tells the renderer how to interpret a command.
type DrawKind int

const (
	DrawSprite DrawKind = iota
	DrawBar             // Outline of Rect, filled Fill pixels from the left
	DrawText
)

// Align anchors text on Rect.X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Bar owners, so the renderer can color them.
const (
	BarPlayer   = "player"
	BarAdvanced = "advanced"
	BarBoss     = "boss"
)

// DrawCmd is one positioned item in screen-space pixels.
type DrawCmd struct {
	Layer  Layer
	Kind   DrawKind
	Sprite Sprite
	Rect   core.Rect
	Fill   int    // Bar fill width
	Text   string // Text content, bar owner, or background theme
	Align  Align
}

// Health bar geometry in pixels.
const (
	playerBarW  = 70
	enemyBarW   = 50
	bodyBarH    = 5
	bodyBarRise = 10
	bossBarW    = 200
	bossBarH    = 15
	bossBarPad  = 10
)

// Controls is the always-visible controls hint.
const Controls = "Controls: Left/Right move, Up jump, F shoot, R restart"

// barFill returns how many of w pixels to fill for hp out of maxHP.
func barFill(w, hp, maxHP int) int {
	return core.Clamp(w*hp/max(1, maxHP), 0, w)
}

// DrawList returns the commands for the current frame in layer order.
func (w *World) DrawList() []DrawCmd {
	cam := w.Camera
	sw, sh := w.cfg.Screen.Width, w.cfg.Screen.Height
	lvl := w.Level.Current(w.cfg.Levels)

	cmds := make([]DrawCmd, 0, 16+w.Enemies.Len()+w.Advanced.Len()*2+w.Bullets.Len()+w.Collectibles.Len())

	// Background tiles repeat every screen width
	shift := -(cam.X() % sw)
	cmds = append(cmds, DrawCmd{
		Layer:  LayerBackground,
		Kind:   DrawSprite,
		Sprite: SpriteBackground,
		Rect:   core.NewRect(shift, 0, sw, sh),
		Text:   lvl.Theme,
	})

	sprite := func(layer Layer, s Sprite, r core.Rect) {
		cmds = append(cmds, DrawCmd{Layer: layer, Kind: DrawSprite, Sprite: s, Rect: cam.Apply(r)})
	}
	bar := func(layer Layer, owner string, r core.Rect, fill int) {
		cmds = append(cmds, DrawCmd{Layer: layer, Kind: DrawBar, Rect: r, Fill: fill, Text: owner})
	}
	text := func(layer Layer, x, y int, s string, a Align) {
		cmds = append(cmds, DrawCmd{Layer: layer, Kind: DrawText, Rect: core.NewRect(x, y, 0, 0), Text: s, Align: a})
	}

	p := w.Player
	if w.Level.Phase != PhaseGameOver {
		sprite(LayerPlayer, SpritePlayer, p.Rect)
		w.Enemies.Each(func(e *Enemy) { sprite(LayerEnemy, SpriteEnemy, e.Rect) })
		w.Advanced.Each(func(a *AdvancedEnemy) {
			sprite(LayerAdvanced, SpriteAdvanced, a.Rect)
			r := cam.Apply(core.NewRect(a.Rect.CenterX()-enemyBarW/2, a.Rect.Y-bodyBarRise, enemyBarW, bodyBarH))
			bar(LayerAdvanced, BarAdvanced, r, barFill(enemyBarW, a.Health, a.MaxHealth))
		})
		w.Bullets.Each(func(b *Bullet) { sprite(LayerBullet, SpriteBullet, b.Rect) })
		w.Collectibles.Each(func(c *Collectible) { sprite(LayerCollectible, collectibleSprite(c.Kind), c.Rect) })
		if boss, ok := w.Bosses.First(); ok {
			sprite(LayerBoss, SpriteBoss, boss.Rect)
			r := core.NewRect(sw-bossBarW-bossBarPad, bossBarPad, bossBarW, bossBarH)
			bar(LayerBoss, BarBoss, r, barFill(bossBarW, boss.Health, boss.MaxHealth))
			boss.Bullets.Each(func(b *BossBullet) { sprite(LayerBossBullet, SpriteBossBullet, b.Rect) })
		}
	}

	pr := cam.Apply(core.NewRect(p.Rect.CenterX()-playerBarW/2, p.Rect.Y-bodyBarRise, playerBarW, bodyBarH))
	bar(LayerHUD, BarPlayer, pr, barFill(playerBarW, p.Health, p.MaxHealth))

	text(LayerHUD, 10, 10, fmt.Sprintf("Lives: %d", p.Lives), AlignLeft)
	text(LayerHUD, 10, 40, fmt.Sprintf("Score: %d", p.Score), AlignLeft)
	text(LayerHUD, 10, 70, fmt.Sprintf("Level: %d", w.Level.Index+1), AlignLeft)
	text(LayerHUD, sw-10, sh-30, Controls, AlignRight)
	if w.ShowGuide() {
		text(LayerHUD, sw/2, sh-60, MsgGuide, AlignCenter)
	}
	if w.paused {
		text(LayerMessage, sw/2, sh/2-40, "PAUSED", AlignCenter)
	}
	if w.Level.Message.Active() {
		text(LayerMessage, sw/2, sh/2, w.Level.Message.Text, AlignCenter)
	}
	return cmds
}

func collectibleSprite(k CollectibleKind) Sprite {
	switch k {
	case CollectHealth:
		return SpriteHealth
	case CollectLife:
		return SpriteLife
	default:
		return SpriteScore
	}
}
