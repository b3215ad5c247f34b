package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// styleSet maps core colors to lipgloss styles for one renderer.
// SSH sessions need their own renderer so color detection follows the
// client's terminal rather than the server's.
type styleSet map[core.Color]lipgloss.Style

func newStyleSet(r *lipgloss.Renderer) styleSet {
	return styleSet{
		core.ColorDefault:      r.NewStyle(),
		core.ColorGreen:        r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorBrightGreen:  r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorYellow:       r.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBrightYellow: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorCyan:         r.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:        r.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorRed:          r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorGray:         r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st styleSet) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st[startColor]
			if !ok {
				style = st[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
