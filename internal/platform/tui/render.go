package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

// palette holds the terminal shade of each core.Color. Adaptive colors keep
// the ground and HUD readable on light terminals.
var palette = [...]lipgloss.TerminalColor{
	core.ColorDefault:      lipgloss.NoColor{},
	core.ColorRed:          lipgloss.Color("#d0433a"),
	core.ColorGreen:        lipgloss.Color("#3f9b3a"),
	core.ColorYellow:       lipgloss.Color("#e5c13b"),
	core.ColorMagenta:      lipgloss.Color("#b35fd0"),
	core.ColorWhite:        lipgloss.AdaptiveColor{Light: "#303030", Dark: "#e8e8e8"},
	core.ColorBrightRed:    lipgloss.Color("#ff5f57"),
	core.ColorBrightGreen:  lipgloss.Color("#5ff06a"),
	core.ColorBrightYellow: lipgloss.Color("#ffe45e"),
	core.ColorBrightBlue:   lipgloss.Color("#5fafff"),
	core.ColorOrange:       lipgloss.Color("#ff9a3c"),
	core.ColorGray:         lipgloss.AdaptiveColor{Light: "#7a7a7a", Dark: "#8a8a8a"},
	core.ColorBrown:        lipgloss.AdaptiveColor{Light: "#6b4423", Dark: "#8b5a2b"},
}

// colorStyles is built from palette. Banners and the boss are drawn bold.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for i, shade := range palette {
		c := core.Color(i) //#nosec G115 -- palette is indexed by core.Color
		style := lipgloss.NewStyle().Foreground(shade)
		switch c {
		case core.ColorBrightYellow, core.ColorBrightRed:
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string, one style
// per run of equally colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(current).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if !c.Valid() {
		c = core.ColorDefault
	}
	return colorStyles[c]
}
