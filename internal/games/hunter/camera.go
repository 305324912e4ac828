package hunter

import "github.com/vovakirdan/monster-hunter/internal/core"

// Camera follows the player horizontally and maps world space to screen space.
// The offset is kept as a float so the lerp can ease in sub-pixel steps.
type Camera struct {
	offset  float64
	lerp    float64
	screenW int
	worldW  int
}

// NewCamera creates a camera for a screenW-wide viewport over a worldW-wide world.
func NewCamera(screenW, worldW int, lerp float64) *Camera {
	return &Camera{lerp: lerp, screenW: screenW, worldW: worldW}
}

// Update eases the offset toward centering target, then clamps it to the world.
func (c *Camera) Update(target core.Rect) {
	goal := float64(target.CenterX() - c.screenW/2)
	c.offset += (goal - c.offset) * c.lerp
	c.offset = core.ClampF(c.offset, 0, c.MaxOffset())
}

// MaxOffset is the rightmost valid offset.
func (c *Camera) MaxOffset() float64 {
	return float64(max(0, c.worldW-c.screenW))
}

// Offset returns the exact offset.
func (c *Camera) Offset() float64 {
	return c.offset
}

// X returns the offset truncated to whole pixels.
func (c *Camera) X() int {
	return int(c.offset)
}

// RightEdge returns the world x of the right screen border.
func (c *Camera) RightEdge() int {
	return c.X() + c.screenW
}

// Apply converts a world-space rect to screen space.
func (c *Camera) Apply(r core.Rect) core.Rect {
	return r.Translate(-c.X(), 0)
}

// Visible reports whether r has not yet scrolled fully past the left edge.
func (c *Camera) Visible(r core.Rect) bool {
	return float64(r.Right()) >= c.offset
}

// Behind reports whether r is fully behind the left edge.
func (c *Camera) Behind(r core.Rect) bool {
	return !c.Visible(r)
}

// Ahead reports whether r starts past the right edge.
func (c *Camera) Ahead(r core.Rect) bool {
	return float64(r.Left()) > c.offset+float64(c.screenW)
}

// Reset moves the camera back to the world origin.
func (c *Camera) Reset() {
	c.offset = 0
}
