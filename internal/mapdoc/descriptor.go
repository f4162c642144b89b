// Package mapdoc loads and validates level map descriptions.
// Core packages depend on mapdoc; mapdoc depends only on core.
package mapdoc

import "github.com/vovakirdan/veiled-path/internal/core"

// AspectColumns and AspectRows fix the 16:9 shape of every level.
const (
	AspectColumns = 16
	AspectRows    = 9
)

// Descriptor is an immutable level definition as read from a map file.
type Descriptor struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size"`
	StartX int    `yaml:"start_x"`
	StartY int    `yaml:"start_y"`
	GoalX  int    `yaml:"goal_x"`
	GoalY  int    `yaml:"goal_y"`
	Walls  []Wall `yaml:"walls"`
	Doors  []Door `yaml:"doors"`
	Keys   []Key  `yaml:"keys"`
}

// Wall is a solid block present in one dimension.
type Wall struct {
	X         int            `yaml:"x"`
	Y         int            `yaml:"y"`
	Dimension core.Dimension `yaml:"dimension"`
}

// Door blocks like a wall until a key with the same id is picked up.
type Door struct {
	X         int            `yaml:"x"`
	Y         int            `yaml:"y"`
	ID        uint32         `yaml:"id"`
	Dimension core.Dimension `yaml:"dimension"`
}

// Key opens every door whose id equals DoorID, in both dimensions.
type Key struct {
	X         int            `yaml:"x"`
	Y         int            `yaml:"y"`
	DoorID    uint32         `yaml:"door_id"`
	Dimension core.Dimension `yaml:"dimension"`
}

// Width returns the number of grid columns.
func (d Descriptor) Width() int {
	return d.Size
}

// Height returns the number of grid rows derived from the 16:9 aspect.
func (d Descriptor) Height() int {
	return (d.Size / AspectColumns) * AspectRows
}

// Start returns the start cell.
func (d Descriptor) Start() (int, int) {
	return d.StartX, d.StartY
}

// Goal returns the goal cell.
func (d Descriptor) Goal() (int, int) {
	return d.GoalX, d.GoalY
}
