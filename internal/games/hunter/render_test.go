package hunter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/monster-hunter/internal/config"
	"github.com/vovakirdan/monster-hunter/internal/core"
)

func TestDrawListLayerOrder(t *testing.T) {
	w := newTestWorld(t)
	w.Level.Index = 2
	for i := range 120 {
		in := core.NewInputFrame(core.ActionMoveRight)
		if i%10 == 0 {
			in.Set(core.ActionFire)
		}
		w.Step(in)
	}

	cmds := w.DrawList()
	if len(cmds) == 0 || cmds[0].Sprite != SpriteBackground {
		t.Fatal("draw list should start with the background")
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i].Layer < cmds[i-1].Layer {
			t.Fatalf("command %d layer %d drawn after layer %d", i, cmds[i].Layer, cmds[i-1].Layer)
		}
	}
	if cmds[0].Text != "lair" {
		t.Errorf("background theme = %q, expected lair", cmds[0].Text)
	}

	var bossBar *DrawCmd
	for i := range cmds {
		if cmds[i].Kind == DrawBar && cmds[i].Text == BarBoss {
			bossBar = &cmds[i]
		}
	}
	if bossBar == nil {
		t.Fatal("boss health bar missing")
	}
	if bossBar.Rect.X != 900-200-10 || bossBar.Rect.Y != 10 {
		t.Errorf("boss bar should be fixed at the top right, got %+v", bossBar.Rect)
	}
}

func TestDrawListGameOver(t *testing.T) {
	w := newTestWorld(t)
	w.Enemies.Add(enemyAt(500))
	w.gameOver()

	var texts []string
	for _, c := range w.DrawList() {
		if c.Kind == DrawSprite && c.Sprite != SpriteBackground {
			t.Errorf("sprite %d drawn after game over", c.Sprite)
		}
		if c.Kind == DrawText {
			texts = append(texts, c.Text)
		}
	}
	joined := strings.Join(texts, "|")
	for _, want := range []string{"Lives: 3", "Score: 0", "Level: 1", MsgGameOver} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q in %q", want, joined)
		}
	}
}

func TestBarFill(t *testing.T) {
	tests := []struct {
		w, hp, maxHP, want int
	}{
		{70, 5, 5, 70},
		{70, 0, 5, 0},
		{200, 250, 500, 100},
		{50, 1, 0, 50}, // Guarded denominator, clamped to width
		{50, -3, 2, 0},
	}
	for _, tc := range tests {
		if got := barFill(tc.w, tc.hp, tc.maxHP); got != tc.want {
			t.Errorf("barFill(%d, %d, %d) = %d, expected %d", tc.w, tc.hp, tc.maxHP, got, tc.want)
		}
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultHunterConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	for range 5 {
		g.Step(core.NewInputFrame(core.ActionMoveRight))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Lives: 3", "Score: 0", "Level: 1", MsgGuide} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	foundPlayer := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			if c.Rune == '█' && c.Color == core.ColorBrightBlue {
				foundPlayer = true
			}
		}
	}
	if !foundPlayer {
		t.Error("player sprite not rasterized")
	}
}

func TestGameState(t *testing.T) {
	g := New(config.DefaultHunterConfig(), nil)
	g.Reset(core.DefaultConfig())

	res := g.Step(core.NewInputFrame(core.ActionFire))
	if res.State.Phase != "playing" || res.State.Finished() {
		t.Errorf("state = %+v", res.State)
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueShoot {
		t.Errorf("cues = %v, expected a single shoot cue", res.Cues)
	}

	g.World().gameOver()
	if st := g.State(); !st.GameOver || !st.Finished() {
		t.Errorf("state after game over = %+v", st)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 5, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGameRenderCentersMessage(t *testing.T) {
	g := New(config.DefaultHunterConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 81, ScreenH: 24, TickRate: 60, Seed: 1})
	g.World().gameOver()

	screen := core.NewScreen(81, 24)
	g.Render(screen)

	for y := range screen.Height() {
		row := screen.Row(y)
		i := strings.Index(row, MsgGameOver)
		if i < 0 {
			continue
		}
		n := utf8.RuneCountInString(MsgGameOver)
		if x := utf8.RuneCountInString(row[:i]); x != (81-n)/2 {
			t.Errorf("message starts at column %d, expected %d", x, (81-n)/2)
		}
		if c := screen.GetCell((81-n)/2, y); c.Color != core.ColorBrightYellow {
			t.Errorf("message color = %v, expected bright yellow", c.Color)
		}
		return
	}
	t.Errorf("game over message not rendered:\n%s", screen.String())
}
