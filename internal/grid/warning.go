package grid

import (
	"fmt"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// WarningKind classifies non-fatal grid construction anomalies.
type WarningKind uint8

const (
	// PlacementWarning: an entry lies outside the grid and was dropped.
	PlacementWarning WarningKind = iota
	// OverwriteWarning: two entries target the same cell; the later one wins.
	OverwriteWarning
)

func (k WarningKind) String() string {
	if k == PlacementWarning {
		return "placement"
	}
	return "overwrite"
}

// Warning describes one construction anomaly.
type Warning struct {
	Kind      WarningKind
	X, Y      int
	Dimension core.Dimension
	Item      Kind // Item being placed
	Previous  Kind // Item replaced, for OverwriteWarning
}

func (w Warning) String() string {
	switch w.Kind {
	case PlacementWarning:
		return fmt.Sprintf("%s at (%d, %d) %s is out of bounds, dropped", w.Item, w.X, w.Y, w.Dimension)
	default:
		return fmt.Sprintf("%s at (%d, %d) %s replaces %s", w.Item, w.X, w.Y, w.Dimension, w.Previous)
	}
}
