package core

// Color is the foreground of a screen cell. Platforms pick the actual shade.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // basic monsters
	ColorGreen         // grass strip
	ColorYellow        // coins
	ColorMagenta       // advanced monsters
	ColorWhite         // HUD text
	ColorBrightRed     // boss and lives
	ColorBrightGreen   // health pickups and full bars
	ColorBrightYellow  // banner messages
	ColorBrightBlue    // the player
	ColorOrange        // bullets
	ColorGray          // controls hint
	ColorBrown         // ground

	colorCount
)

// Valid reports whether c is a known palette entry.
func (c Color) Valid() bool {
	return c < colorCount
}
