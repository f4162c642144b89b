package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/engine"
	"github.com/vovakirdan/veiled-path/internal/grid"
	"github.com/vovakirdan/veiled-path/internal/platform/fx"
)

// debugCharWidth is the advance of ebitenutil's debug font.
const debugCharWidth = 6

var (
	colorLightBackground = color.RGBA{0xe9, 0xe4, 0xd6, 0xff}
	colorDarkBackground  = color.RGBA{0x16, 0x13, 0x24, 0xff}
	colorLightWall       = color.RGBA{0x4a, 0x45, 0x3c, 0xff}
	colorDarkWall        = color.RGBA{0x8c, 0x7c, 0xd9, 0xff}
	colorGhost           = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorDoor            = color.RGBA{0xd9, 0xa4, 0x41, 0xff}
	colorKey             = color.RGBA{0xf2, 0xd0, 0x4b, 0xff}
	colorGoal            = color.RGBA{0x4c, 0xc2, 0x6e, 0xff}
	colorLightPlayer     = color.RGBA{0x1f, 0x8f, 0xb8, 0xff}
	colorDarkPlayer      = color.RGBA{0xe0, 0x5a, 0xc8, 0xff}
	colorPanel           = color.RGBA{0x00, 0x00, 0x00, 0xc0}
)

func backgroundColor(d core.Dimension) color.RGBA {
	if d == core.Dark {
		return colorDarkBackground
	}
	return colorLightBackground
}

func wallColor(d core.Dimension) color.RGBA {
	if d == core.Dark {
		return colorDarkWall
	}
	return colorLightWall
}

func playerColor(d core.Dimension) color.RGBA {
	if d == core.Dark {
		return colorDarkPlayer
	}
	return colorLightPlayer
}

// Draw renders the level (Ebiten interface).
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.background.Color())

	lvl := w.level.Engine()
	snap := lvl.Snapshot()
	cs := float32(w.opts.CellSize)
	top := float32(hudCells) * cs

	w.drawCells(screen, lvl.Grid(), snap.Dimension, top)

	// Cell (x, y) is centered on integer coordinates, so shift by half a cell.
	px := (float32(snap.Player.Pos.X) + 0.5) * cs
	py := top + (float32(snap.Player.Pos.Y)+0.5)*cs
	vector.DrawFilledCircle(screen, px, py, float32(core.PlayerRadius)*cs, playerColor(snap.Dimension), true)

	w.drawHUD(screen, snap)
	w.drawFooter(screen, snap, top+float32(snap.Height)*cs)

	switch snap.State {
	case engine.Over:
		w.drawOverlay(screen, w.level.T("You died"),
			fmt.Sprintf("[R] %s  [Esc] %s  [Q] %s", w.level.T("Try again"), w.level.T("Menu"), w.level.T("Quit")))
	case engine.Win:
		w.drawOverlay(screen, w.level.T("You win!"),
			fmt.Sprintf("[Enter] %s  [Q] %s", w.level.T("Menu"), w.level.T("Quit")))
	}
}

func (w *Window) drawCells(screen *ebiten.Image, g *grid.DualGrid, active core.Dimension, top float32) {
	cs := float32(w.opts.CellSize)
	ghost := fx.WithAlpha(colorGhost, 0.25)

	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			sx, sy := float32(x)*cs, top+float32(y)*cs
			cx, cy := sx+cs/2, sy+cs/2

			c, _ := g.At(x, y, active)
			switch v := c.Item.(type) {
			case grid.Wall:
				vector.DrawFilledRect(screen, sx, sy, cs, cs, wallColor(active), false)
				continue
			case grid.Door:
				if !v.Open {
					vector.DrawFilledRect(screen, sx, sy, cs, cs, colorDoor, false)
					vector.DrawFilledRect(screen, sx+cs*0.2, sy+cs*0.45, cs*0.6, cs*0.1, wallColor(active), false)
				}
				continue
			case grid.Key:
				if !v.Taken {
					vector.DrawFilledCircle(screen, cx, cy, float32(core.PickupRadius)*cs*0.8, colorKey, true)
				}
				continue
			case grid.Goal:
				vector.DrawFilledCircle(screen, cx, cy, float32(core.PickupRadius)*cs, colorGoal, true)
				continue
			}

			if !w.level.ShowOther() {
				continue
			}
			other, _ := g.At(x, y, active.Other())
			if grid.Blocking(other.Item) {
				vector.DrawFilledRect(screen, sx+1, sy+1, cs-2, cs-2, ghost, false)
			}
		}
	}
}

func (w *Window) drawHUD(screen *ebiten.Image, snap engine.Snapshot) {
	dim := w.level.T("Light")
	if snap.Dimension == core.Dark {
		dim = w.level.T("Dark")
	}
	status := fmt.Sprintf("%s   %s   %s", w.level.Title(),
		w.level.T("Dimension: %s", dim), w.level.T("Deaths: %d", snap.Deaths))
	ebitenutil.DebugPrintAt(screen, status, 6, 4)
}

func (w *Window) drawFooter(screen *ebiten.Image, snap engine.Snapshot, y float32) {
	width := screen.Bounds().Dx()
	var lines []string
	switch notice, ok := w.level.Notice(); {
	case snap.HasMessage:
		lines = append(wrapText(snap.Message, width/debugCharWidth-2), w.level.T("Space: continue"))
	case ok:
		lines = []string{notice}
	case snap.SwitchAllowed:
		lines = []string{w.level.T("Space: switch dimension")}
	}
	if len(lines) == 0 {
		return
	}
	footH := float32(footCells * w.opts.CellSize)
	vector.DrawFilledRect(screen, 0, y, float32(width), footH, colorPanel, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 6, int(y)+4)
}

func (w *Window) drawOverlay(screen *ebiten.Image, title, help string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorPanel, false)

	tx := (b.Dx() - len([]rune(title))*debugCharWidth) / 2
	hx := (b.Dx() - len([]rune(help))*debugCharWidth) / 2
	ebitenutil.DebugPrintAt(screen, title, tx, b.Dy()/2-16)
	ebitenutil.DebugPrintAt(screen, help, hx, b.Dy()/2+4)
}

// wrapText breaks s into lines of at most width cells on word boundaries.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(ansi.Wordwrap(s, width, ""), "\n")
}
