package hunter

import (
	"unicode/utf8"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

// Terminal look of each sprite.
var spriteCells = map[Sprite]core.Cell{
	SpritePlayer:     {Rune: '█', Color: core.ColorBrightBlue},
	SpriteEnemy:      {Rune: '▓', Color: core.ColorRed},
	SpriteAdvanced:   {Rune: '▒', Color: core.ColorMagenta},
	SpriteBoss:       {Rune: '█', Color: core.ColorBrightRed},
	SpriteBullet:     {Rune: '•', Color: core.ColorBrightYellow},
	SpriteBossBullet: {Rune: '*', Color: core.ColorOrange},
	SpriteHealth:     {Rune: '+', Color: core.ColorBrightGreen},
	SpriteLife:       {Rune: '♥', Color: core.ColorBrightRed},
	SpriteScore:      {Rune: '$', Color: core.ColorYellow},
}

// Scenery per level theme: a decoration rune and the ground color.
var themes = map[string]struct {
	decor  rune
	color  core.Color
	ground core.Color
}{
	"forest": {decor: '♣', color: core.ColorGreen, ground: core.ColorBrown},
	"cave":   {decor: '▲', color: core.ColorGray, ground: core.ColorGray},
	"lair":   {decor: '†', color: core.ColorRed, ground: core.ColorBrown},
}

const (
	groundRune   = '═'
	barFillRune  = '■'
	barEmptyRune = '·'
	decorPerTile = 6
)

// rasterizer maps screen-space pixels onto terminal cells.
type rasterizer struct {
	dst        *core.Screen
	pxW, pxH   int
	groundY    int
	cols, rows int
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (rz rasterizer) col(x int) int { return floorDiv(x*rz.cols, rz.pxW) }
func (rz rasterizer) row(y int) int { return floorDiv(y*rz.rows, rz.pxH) }

// cells converts a pixel rect to a cell rect of at least one cell.
func (rz rasterizer) cells(r core.Rect) core.Rect {
	x0, y0 := rz.col(r.X), rz.row(r.Y)
	x1 := max(x0+1, -floorDiv(-r.Right()*rz.cols, rz.pxW))
	y1 := max(y0+1, -floorDiv(-r.Bottom()*rz.rows, rz.pxH))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// draw rasterizes a draw list onto dst.
func (rz rasterizer) draw(cmds []DrawCmd) {
	rz.dst.Clear()
	for _, c := range cmds {
		switch c.Kind {
		case DrawSprite:
			if c.Sprite == SpriteBackground {
				rz.background(c)
				continue
			}
			look, ok := spriteCells[c.Sprite]
			if !ok {
				continue
			}
			rz.dst.DrawRect(rz.cells(c.Rect), look.Rune, look.Color)
		case DrawBar:
			rz.bar(c)
		case DrawText:
			rz.text(c)
		}
	}
}

func (rz rasterizer) background(c DrawCmd) {
	th, ok := themes[c.Text]
	if !ok {
		th = themes["forest"]
	}
	gy := rz.row(rz.groundY)
	rz.dst.DrawHLine(0, gy, rz.cols, groundRune, th.ground)

	// Tiles scroll with the camera; decorations sit evenly across each tile
	for tile := c.Rect.X; tile < rz.pxW; tile += c.Rect.W {
		for k := range decorPerTile {
			x := tile + k*c.Rect.W/decorPerTile + c.Rect.W/(2*decorPerTile)
			rz.dst.SetColored(rz.col(x), gy-1, th.decor, th.color)
		}
	}
	for x := 0; x < rz.cols; x++ {
		for y := gy + 1; y < rz.rows; y++ {
			rz.dst.SetColored(x, y, '░', th.ground)
		}
	}
}

func (rz rasterizer) bar(c DrawCmd) {
	r := rz.cells(c.Rect)
	r.H = 1
	fill := 0
	if c.Rect.W > 0 {
		fill = (c.Fill*r.W + c.Rect.W - 1) / c.Rect.W
	}
	color := core.ColorRed
	if c.Text == BarBoss {
		color = core.ColorBrightGreen
	}
	for i := range r.W {
		if i < fill {
			rz.dst.SetColored(r.X+i, r.Y, barFillRune, color)
		} else {
			rz.dst.SetColored(r.X+i, r.Y, barEmptyRune, core.ColorGray)
		}
	}
}

func (rz rasterizer) text(c DrawCmd) {
	n := utf8.RuneCountInString(c.Text)
	y := rz.row(c.Rect.Y)

	// Messages always sit boxed in the middle of the terminal.
	if c.Layer == LayerMessage {
		box := core.NewRect((rz.cols-n)/2-2, y-1, n+4, 3)
		rz.dst.DrawRect(box, ' ', core.ColorDefault)
		rz.dst.DrawBox(box, core.ColorWhite)
		rz.dst.DrawTextCentered(y, c.Text, core.ColorBrightYellow)
		return
	}

	x := rz.col(c.Rect.X)
	switch c.Align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	x = core.Clamp(x, 0, max(0, rz.cols-n))

	color := core.ColorWhite
	if c.Text == Controls {
		color = core.ColorGray
	}
	rz.dst.DrawText(x, y, c.Text, color)
}
