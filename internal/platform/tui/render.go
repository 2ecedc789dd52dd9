package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
}

// RenderScreen converts a game screen into a styled string for the terminal.
// Runs of same-colored cells are grouped so lipgloss escape sequences are
// emitted once per run instead of once per cell.
func RenderScreen(s *core.Screen) string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		var run strings.Builder
		runColor := core.ColorDefault
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style, ok := colorStyles[runColor]; ok && runColor != core.ColorDefault {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		if y < s.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
