// Package inspect renders text reports of a level for the command line.
package inspect

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gookit/color"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/grid"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

// Styles used when color output is on.
var (
	StyleWall    = color.Style{color.FgWhite, color.OpBold}
	StyleDoor    = color.Style{color.FgYellow}
	StyleKey     = color.Style{color.FgMagenta, color.OpBold}
	StyleGoal    = color.Style{color.FgGreen, color.OpBold}
	StyleStart   = color.Style{color.FgCyan, color.OpBold}
	StyleSubtle  = color.Style{color.FgGray}
	StyleOK      = color.Style{color.FgGreen}
	StyleWarning = color.Style{color.FgYellow, color.OpBold}
	StyleError   = color.Style{color.FgRed, color.OpBold}
)

// Summary counts what a level contains and lists likely authoring mistakes.
type Summary struct {
	Name            string
	Width, Height   int
	Walls           [core.DimensionCount]int
	Doors           int
	Keys            int
	Warnings        []grid.Warning
	DoorsWithoutKey []uint32 // Door ids no key opens
	KeysWithoutDoor []uint32 // Key ids that match no door
}

// Clean reports whether the level has no warnings or unmatched ids.
func (s Summary) Clean() bool {
	return len(s.Warnings) == 0 && len(s.DoorsWithoutKey) == 0 && len(s.KeysWithoutDoor) == 0
}

// Summarize inspects a built grid.
func Summarize(d mapdoc.Descriptor, g *grid.DualGrid) Summary {
	s := Summary{
		Name:     d.Name,
		Width:    g.Width(),
		Height:   g.Height(),
		Warnings: g.Warnings(),
	}

	doors := make(map[uint32]bool)
	keys := make(map[uint32]bool)
	for _, dim := range core.Dimensions() {
		g.Items(dim, func(c grid.Cell) {
			switch v := c.Item.(type) {
			case grid.Wall:
				s.Walls[dim]++
			case grid.Door:
				s.Doors++
				doors[v.ID] = true
			case grid.Key:
				s.Keys++
				keys[v.DoorID] = true
			}
		})
	}

	for id := range doors {
		if !keys[id] {
			s.DoorsWithoutKey = append(s.DoorsWithoutKey, id)
		}
	}
	for id := range keys {
		if !doors[id] {
			s.KeysWithoutDoor = append(s.KeysWithoutDoor, id)
		}
	}
	slices.Sort(s.DoorsWithoutKey)
	slices.Sort(s.KeysWithoutDoor)
	return s
}

// Options control Dump output.
type Options struct {
	Color bool
}

func (o Options) paint(st color.Style, s string) string {
	if !o.Color {
		return s
	}
	return st.Sprint(s)
}

// Dump writes both dimensions of the grid as text, one character per cell.
//
//	#  wall        D  closed door   d  open door
//	K  key         k  taken key     G  goal
//	S  start       .  empty
func Dump(w io.Writer, d mapdoc.Descriptor, g *grid.DualGrid, opts Options) error {
	var b strings.Builder

	title := d.Name
	if title == "" {
		title = "(unnamed)"
	}
	fmt.Fprintf(&b, "%s  size %d  grid %dx%d\n", title, d.Size, g.Width(), g.Height())
	sx, sy := d.Start()
	gx, gy := g.Goal()
	fmt.Fprintf(&b, "start (%d,%d)  goal (%d,%d)\n", sx, sy, gx, gy)

	for _, dim := range core.Dimensions() {
		fmt.Fprintf(&b, "\n%s:\n", dim)
		b.WriteString("   ")
		for x := 0; x < g.Width(); x++ {
			b.WriteString(opts.paint(StyleSubtle, fmt.Sprintf("%d", x%10)))
		}
		b.WriteByte('\n')
		for y := 0; y < g.Height(); y++ {
			b.WriteString(opts.paint(StyleSubtle, fmt.Sprintf("%2d ", y)))
			for x := 0; x < g.Width(); x++ {
				c, _ := g.At(x, y, dim)
				if x == sx && y == sy && c.Item == nil {
					b.WriteString(opts.paint(StyleStart, "S"))
					continue
				}
				r, st := cellGlyph(c.Item)
				b.WriteString(opts.paint(st, string(r)))
			}
			b.WriteByte('\n')
		}
	}

	if warns := g.Warnings(); len(warns) > 0 {
		fmt.Fprintf(&b, "\n%s\n", opts.paint(StyleWarning, fmt.Sprintf("%d warning(s):", len(warns))))
		for _, wn := range warns {
			fmt.Fprintf(&b, "  - %s\n", wn)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func cellGlyph(it grid.Item) (rune, color.Style) {
	switch v := it.(type) {
	case grid.Wall:
		return '#', StyleWall
	case grid.Door:
		if v.Open {
			return 'd', StyleSubtle
		}
		return 'D', StyleDoor
	case grid.Key:
		if v.Taken {
			return 'k', StyleSubtle
		}
		return 'K', StyleKey
	case grid.Goal:
		return 'G', StyleGoal
	default:
		return '.', StyleSubtle
	}
}
