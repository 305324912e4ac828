package hunter

import (
	"slices"
	"testing"

	"github.com/vovakirdan/monster-hunter/internal/config"
)

func TestWaveComposition(t *testing.T) {
	cfg := config.DefaultHunterConfig()

	tests := []struct {
		name         string
		lives        int
		health       int
		want         []CollectibleKind
		healthFirstN bool // Random health count; only check the first slot and the absence of life
	}{
		{"all full", 3, 5, []CollectibleKind{CollectScore, CollectScore}, false},
		{"missing life", 2, 5, []CollectibleKind{CollectLife, CollectScore}, false},
		{"missing both", 2, 3, []CollectibleKind{CollectLife, CollectHealth}, false},
		{"missing health", 3, 1, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(7, &cfg)
			p := NewPlayer(cfg.Player, cfg.World.GroundHeight)
			p.Lives = tc.lives
			p.Health = tc.health

			got := s.Wave(p)
			if len(got) != cfg.Collectible.PerWave {
				t.Fatalf("wave size = %d, expected %d", len(got), cfg.Collectible.PerWave)
			}
			if tc.healthFirstN {
				if got[0] != CollectHealth {
					t.Errorf("first pickup = %v, expected health", got[0])
				}
				if slices.Contains(got, CollectLife) {
					t.Error("full lives should not spawn a life pickup")
				}
				return
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("wave = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestWaveHealthCountVaries(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	s := NewSpawner(99, &cfg)
	p := NewPlayer(cfg.Player, cfg.World.GroundHeight)
	p.Health = 1

	seen := map[int]bool{}
	for range 200 {
		n := 0
		for _, k := range s.Wave(p) {
			if k == CollectHealth {
				n++
			}
		}
		seen[n] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("expected both one and two health pickups over many waves, saw %v", seen)
	}
}

func TestSpawnPositions(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cam := NewCamera(cfg.Screen.Width, cfg.World.Width, cfg.Camera.Lerp)
	cam.offset = 300
	s := NewSpawner(3, &cfg)
	ground := cfg.World.GroundHeight

	for range 50 {
		e := s.Enemy(cam)
		if cx := e.Rect.CenterX(); cx < 1200 || cx > 1300 {
			t.Errorf("enemy centerX = %d, expected within [1200, 1300]", cx)
		}
		if e.Rect.Bottom() != ground {
			t.Errorf("enemy bottom = %d, expected ground %d", e.Rect.Bottom(), ground)
		}
		if e.Speed < cfg.Enemy.MinSpeed || e.Speed > cfg.Enemy.MaxSpeed {
			t.Errorf("enemy speed = %d out of range", e.Speed)
		}

		a := s.Advanced(cam)
		if a.Health != cfg.Advanced.MaxHealth || !a.OnGround {
			t.Errorf("advanced enemy should spawn grounded at full health: %+v", a)
		}
		if a.JumpTimer < cfg.Advanced.JumpTimerMin || a.JumpTimer > cfg.Advanced.JumpTimerMax {
			t.Errorf("jump timer = %d out of range", a.JumpTimer)
		}

		c := s.Collectible(cam, CollectScore)
		if b := c.Rect.Bottom(); b < ground-cfg.Collectible.MaxRise || b > ground-cfg.Collectible.MinRise {
			t.Errorf("collectible bottom = %d, expected within [%d, %d]", b, ground-cfg.Collectible.MaxRise, ground-cfg.Collectible.MinRise)
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cam := NewCamera(cfg.Screen.Width, cfg.World.Width, cfg.Camera.Lerp)
	s1 := NewSpawner(42, &cfg)
	s2 := NewSpawner(42, &cfg)

	for i := range 100 {
		a, b := s1.Enemy(cam), s2.Enemy(cam)
		if a.Rect != b.Rect || a.Speed != b.Speed {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestBetweenInclusive(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	s := NewSpawner(1, &cfg)

	if got := s.Between(4, 4); got != 4 {
		t.Errorf("Between(4, 4) = %d", got)
	}
	if got := s.Between(9, 2); got != 9 {
		t.Errorf("inverted range should return lo, got %d", got)
	}

	seen := map[int]bool{}
	for range 500 {
		v := s.Between(5, 8)
		if v < 5 || v > 8 {
			t.Fatalf("Between(5, 8) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all of 5..8 to appear, saw %v", seen)
	}
}
