package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/engine"
	"github.com/vovakirdan/veiled-path/internal/grid"
)

// Each grid column is drawn two characters wide so cells look square.
const (
	cellW     = 2
	hudRows   = 1
	footRows  = 3
	borderPad = 1
)

// MinScreenSize returns the terminal size needed for a grid.
func MinScreenSize(gridW, gridH int) (int, int) {
	return gridW*cellW + 2*borderPad, gridH + 2*borderPad + hudRows + footRows
}

// Render draws the level into dst.
func (l *Level) Render(dst *core.Screen) {
	if l.level == nil {
		return
	}
	tr := l.settings.Catalog
	snap := l.level.Snapshot()
	g := l.level.Grid()

	needW, needH := MinScreenSize(g.Width(), g.Height())
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorGray)
		return
	}

	ox := (dst.Width() - needW) / 2
	oy := hudRows + (dst.Height()-needH)/2

	l.renderHUD(dst, ox, oy-hudRows, needW, snap)

	frame := core.NewRect(ox, oy, needW, g.Height()+2*borderPad)
	dst.DrawBox(frame, core.WallColor(snap.Dimension))
	l.renderCells(dst, ox+borderPad, oy+borderPad, g, snap.Dimension)
	renderPlayer(dst, ox+borderPad, oy+borderPad, snap.Player, snap.Dimension)

	footY := frame.Bottom()
	switch {
	case snap.HasMessage:
		lines := wrap(snap.Message, dst.Width(), footRows-1)
		for i, line := range lines {
			dst.DrawTextCentered(footY+i, line, core.ColorBrightWhite)
		}
		dst.DrawTextCentered(footY+footRows-1, tr.T("Space: continue"), core.ColorGray)
	case l.noticeTicks > 0:
		dst.DrawTextCentered(footY, l.notice, core.ColorYellow)
	case snap.SwitchAllowed:
		dst.DrawTextCentered(footY+footRows-1, tr.T("Space: switch dimension"), core.ColorGray)
	}

	switch snap.State {
	case engine.Over:
		l.renderOverlay(dst, frame, tr.T("You died"), core.ColorRed,
			fmt.Sprintf("[R] %s  [Esc] %s  [Q] %s", tr.T("Try again"), tr.T("Menu"), tr.T("Quit")))
	case engine.Win:
		l.renderOverlay(dst, frame, tr.T("You win!"), core.ColorGreen,
			fmt.Sprintf("[Enter] %s  [Q] %s", tr.T("Menu"), tr.T("Quit")))
	}
}

func (l *Level) renderHUD(dst *core.Screen, x, y, w int, snap engine.Snapshot) {
	tr := l.settings.Catalog
	dst.DrawTextColor(x, y, l.Title(), core.ColorBrightWhite)

	dim := tr.T("Light")
	if snap.Dimension == core.Dark {
		dim = tr.T("Dark")
	}
	right := tr.T("Dimension: %s", dim) + "  " + tr.T("Deaths: %d", snap.Deaths)
	dst.DrawTextColor(x+w-len([]rune(right)), y, right, core.WallColor(snap.Dimension))
}

func (l *Level) renderCells(dst *core.Screen, ox, oy int, g *grid.DualGrid, active core.Dimension) {
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			sx, sy := ox+x*cellW, oy+y
			c, _ := g.At(x, y, active)
			if r, col, ok := glyph(c.Item, active); ok {
				dst.SetColor(sx, sy, r, col)
				dst.SetColor(sx+1, sy, r, col)
				continue
			}
			if !l.settings.ShowOther {
				continue
			}
			other, _ := g.At(x, y, active.Other())
			if grid.Blocking(other.Item) {
				dst.SetColor(sx, sy, '░', core.ColorGhost)
				dst.SetColor(sx+1, sy, '░', core.ColorGhost)
			}
		}
	}
}

// glyph returns how an item of the active dimension is drawn.
func glyph(it grid.Item, dim core.Dimension) (rune, core.Color, bool) {
	switch v := it.(type) {
	case grid.Wall:
		return '█', core.WallColor(dim), true
	case grid.Door:
		if v.Open {
			return 0, 0, false
		}
		return '▒', core.ColorDoor, true
	case grid.Key:
		if v.Taken {
			return 0, 0, false
		}
		return '◆', core.ColorKey, true
	case grid.Goal:
		return '◎', core.ColorGoal, true
	default:
		return 0, 0, false
	}
}

// renderPlayer draws the player at half-cell horizontal resolution.
// Cell x spans [x-0.5, x+0.5) in grid units.
func renderPlayer(dst *core.Screen, ox, oy int, p engine.Player, dim core.Dimension) {
	sx := ox + int(math.Floor((p.Pos.X+0.5)*cellW))
	sy := oy + int(math.Floor(p.Pos.Y+0.5))
	dst.SetColor(sx, sy, '●', core.PlayerColor(dim))
}

func (l *Level) renderOverlay(dst *core.Screen, frame core.Rect, title string, col core.Color, help string) {
	w := max(len([]rune(title)), len([]rune(help))) + 4
	h := 5
	box := core.NewRect(frame.X+(frame.W-w)/2, frame.Y+(frame.H-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, col)
	dst.DrawTextColor(box.X+(w-len([]rune(title)))/2, box.Y+1, title, col)
	dst.DrawTextColor(box.X+2, box.Y+3, help, core.ColorWhite)
}

// wrap word-wraps s to width and keeps at most rows lines, marking a cut
// with an ellipsis.
func wrap(s string, width, rows int) []string {
	lines := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	if len(lines) <= rows {
		return lines
	}
	lines = lines[:rows]
	last := []rune(lines[rows-1])
	if len(last) >= width {
		last = last[:width-1]
	}
	lines[rows-1] = string(last) + "…"
	return lines
}
