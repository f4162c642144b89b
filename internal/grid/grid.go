// Package grid holds the two-dimension cell storage of a level and the
// door/key lock registry.
package grid

import (
	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

// Cell is one grid position and its item.
type Cell struct {
	X, Y int
	Item Item
}

// Placement locates an item in one dimension.
type Placement struct {
	X, Y      int
	Dimension core.Dimension
}

// DualGrid stores one flat cell array per dimension, indexed x*height+y.
// Door and key state is tracked in a registry keyed by door id.
type DualGrid struct {
	width, height int
	cells         [core.DimensionCount][]Cell
	goalX, goalY  int

	doors  map[uint32][]Placement
	keys   map[uint32][]Placement
	opened mapset.Set[uint32]

	warnings []Warning
	logger   *log.Logger
}

// Option configures Build.
type Option func(*DualGrid)

// WithLogger sets the logger used for construction warnings.
// A nil logger disables logging; warnings are still retained.
func WithLogger(l *log.Logger) Option {
	return func(g *DualGrid) {
		g.logger = l
	}
}

// Build constructs a grid from a validated descriptor. The goal is placed in
// both dimensions first, then walls, doors and keys in list order.
func Build(d mapdoc.Descriptor, opts ...Option) *DualGrid {
	g := &DualGrid{
		width:  d.Width(),
		height: d.Height(),
		goalX:  d.GoalX,
		goalY:  d.GoalY,
		doors:  make(map[uint32][]Placement),
		keys:   make(map[uint32][]Placement),
		opened: mapset.New[uint32](),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	n := g.width * g.height
	if n < 0 {
		n = 0
	}
	for _, dim := range core.Dimensions() {
		cells := make([]Cell, n)
		for x := 0; x < g.width; x++ {
			for y := 0; y < g.height; y++ {
				cells[x*g.height+y] = Cell{X: x, Y: y}
			}
		}
		g.cells[dim] = cells
	}

	for _, dim := range core.Dimensions() {
		g.place(d.GoalX, d.GoalY, dim, Goal{})
	}
	for _, w := range d.Walls {
		g.place(w.X, w.Y, w.Dimension, Wall{})
	}
	for _, door := range d.Doors {
		g.place(door.X, door.Y, door.Dimension, Door{ID: door.ID})
	}
	for _, k := range d.Keys {
		g.place(k.X, k.Y, k.Dimension, Key{DoorID: k.DoorID})
	}

	g.index()
	return g
}

func (g *DualGrid) place(x, y int, dim core.Dimension, it Item) {
	c, ok := g.MutableCell(x, y, dim)
	if !ok {
		g.warn(Warning{Kind: PlacementWarning, X: x, Y: y, Dimension: dim, Item: it.Kind()})
		return
	}
	if c.Item != nil {
		g.warn(Warning{Kind: OverwriteWarning, X: x, Y: y, Dimension: dim, Item: it.Kind(), Previous: c.Item.Kind()})
	}
	c.Item = it
}

func (g *DualGrid) warn(w Warning) {
	g.warnings = append(g.warnings, w)
	if g.logger != nil {
		g.logger.Warn("map entry", "kind", w.Kind, "item", w.Item, "x", w.X, "y", w.Y, "dimension", w.Dimension, "detail", w.String())
	}
}

// index records every surviving door and key in the lock registry.
func (g *DualGrid) index() {
	for _, dim := range core.Dimensions() {
		for _, c := range g.cells[dim] {
			switch it := c.Item.(type) {
			case Door:
				g.doors[it.ID] = append(g.doors[it.ID], Placement{X: c.X, Y: c.Y, Dimension: dim})
			case Key:
				g.keys[it.DoorID] = append(g.keys[it.DoorID], Placement{X: c.X, Y: c.Y, Dimension: dim})
			}
		}
	}
}

// Width returns the number of columns.
func (g *DualGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *DualGrid) Height() int { return g.height }

// Goal returns the goal coordinates from the descriptor.
func (g *DualGrid) Goal() (int, int) { return g.goalX, g.goalY }

// InBounds reports whether (x, y) lies inside the grid.
func (g *DualGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns a copy of the cell at (x, y) in dim, or false outside the grid.
func (g *DualGrid) At(x, y int, dim core.Dimension) (Cell, bool) {
	c, ok := g.MutableCell(x, y, dim)
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// MutableCell returns the stored cell at (x, y) in dim.
// Only grid construction and the unlock protocol write through it.
func (g *DualGrid) MutableCell(x, y int, dim core.Dimension) (*Cell, bool) {
	if !g.InBounds(x, y) || int(dim) >= core.DimensionCount {
		return nil, false
	}
	return &g.cells[dim][x*g.height+y], true
}

// Items calls fn for every non-empty cell of dim in storage order.
func (g *DualGrid) Items(dim core.Dimension, fn func(Cell)) {
	if int(dim) >= core.DimensionCount {
		return
	}
	for _, c := range g.cells[dim] {
		if c.Item != nil {
			fn(c)
		}
	}
}

// Warnings returns the construction warnings in the order they occurred.
func (g *DualGrid) Warnings() []Warning {
	out := make([]Warning, len(g.warnings))
	copy(out, g.warnings)
	return out
}
