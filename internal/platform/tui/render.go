package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// palette maps core.Color to terminal colors. Adaptive entries keep the
// light-dimension walls readable on light terminal backgrounds.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.AdaptiveColor{Light: "4", Dark: "12"},
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.AdaptiveColor{Light: "30", Dark: "6"},
	core.ColorWhite:       lipgloss.AdaptiveColor{Light: "240", Dark: "7"},
	core.ColorBrightWhite: lipgloss.AdaptiveColor{Light: "232", Dark: "15"},
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorDarkGray:    lipgloss.AdaptiveColor{Light: "252", Dark: "238"},
}

// colorStyles holds one style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, tc := range palette {
		st := lipgloss.NewStyle().Foreground(tc)
		if c == core.ColorBrightWhite {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(c).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}
