package hunter

import (
	"testing"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

func TestCameraStaysInBounds(t *testing.T) {
	cam := NewCamera(900, 2700, 0.1)

	targets := []int{5000, -500, 1200, 2700, 0}
	for _, x := range targets {
		r := core.NewRect(x, 400, 100, 100)
		for tick := range 300 {
			cam.Update(r)
			if cam.Offset() < 0 || cam.Offset() > cam.MaxOffset() {
				t.Fatalf("target %d tick %d: offset %g out of [0, %g]", x, tick, cam.Offset(), cam.MaxOffset())
			}
		}
	}

	far := core.NewRect(5000, 400, 100, 100)
	for range 300 {
		cam.Update(far)
	}
	if cam.Offset() != 1800 {
		t.Errorf("offset = %g, expected clamp to 1800", cam.Offset())
	}
}

func TestCameraLerp(t *testing.T) {
	cam := NewCamera(900, 2700, 0.1)
	// Center 1450, target 1000, 10% of the way
	cam.Update(core.NewRect(1400, 0, 100, 100))
	if cam.Offset() != 100 {
		t.Errorf("offset = %g, expected 100", cam.Offset())
	}
}

func TestCameraNarrowWorld(t *testing.T) {
	cam := NewCamera(900, 600, 0.5)
	cam.Update(core.NewRect(500, 0, 100, 100))
	if cam.Offset() != 0 {
		t.Errorf("world narrower than screen should pin offset to 0, got %g", cam.Offset())
	}
}

func TestCameraApplyAndVisibility(t *testing.T) {
	cam := NewCamera(900, 2700, 0.1)
	cam.offset = 100

	if got := cam.Apply(core.NewRect(150, 20, 10, 10)); got.X != 50 || got.Y != 20 {
		t.Errorf("Apply = %+v, expected x=50 y=20", got)
	}

	tests := []struct {
		name   string
		r      core.Rect
		behind bool
		ahead  bool
	}{
		{"right edge on offset", core.NewRect(90, 0, 10, 10), false, false},
		{"fully behind", core.NewRect(80, 0, 19, 10), true, false},
		{"on screen", core.NewRect(500, 0, 10, 10), false, false},
		{"left on right edge", core.NewRect(1000, 0, 10, 10), false, false},
		{"past right edge", core.NewRect(1001, 0, 10, 10), false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cam.Behind(tc.r); got != tc.behind {
				t.Errorf("Behind = %v, expected %v", got, tc.behind)
			}
			if got := cam.Ahead(tc.r); got != tc.ahead {
				t.Errorf("Ahead = %v, expected %v", got, tc.ahead)
			}
		})
	}

	cam.Reset()
	if cam.Offset() != 0 {
		t.Error("Reset should zero the offset")
	}
}
