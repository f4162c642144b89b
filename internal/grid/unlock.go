package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Unlock reports the effect of OpenDoor.
type Unlock struct {
	DoorID  uint32
	Changed bool        // False when the id was already open
	Doors   []Placement // Doors that were opened
	Keys    []Placement // Keys that were marked taken
}

// OpenDoor opens every door with the given id and marks every key for it as
// taken, in both dimensions. An id without doors only marks its keys.
// Calling it again for the same id is a no-op.
func (g *DualGrid) OpenDoor(doorID uint32) Unlock {
	ev := Unlock{DoorID: doorID}
	if g.opened.Has(doorID) {
		return ev
	}
	g.opened.Put(doorID)
	ev.Changed = true

	for _, p := range g.doors[doorID] {
		if c, ok := g.MutableCell(p.X, p.Y, p.Dimension); ok {
			c.Item = Door{ID: doorID, Open: true}
			ev.Doors = append(ev.Doors, p)
		}
	}
	for _, p := range g.keys[doorID] {
		if c, ok := g.MutableCell(p.X, p.Y, p.Dimension); ok {
			c.Item = Key{DoorID: doorID, Taken: true}
			ev.Keys = append(ev.Keys, p)
		}
	}
	return ev
}

// IsOpen reports whether doorID has been unlocked.
func (g *DualGrid) IsOpen(doorID uint32) bool {
	return g.opened.Has(doorID)
}

// OpenedDoors returns a copy of the set of unlocked door ids.
func (g *DualGrid) OpenedDoors() mapset.Set[uint32] {
	out := mapset.New[uint32]()
	g.opened.Each(func(id uint32) {
		out.Put(id)
	})
	return out
}

// OpenedDoorIDs returns the unlocked door ids in ascending order.
func (g *DualGrid) OpenedDoorIDs() []uint32 {
	ids := make([]uint32, 0, g.opened.Size())
	g.opened.Each(func(id uint32) {
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DoorIDs returns the ids of all doors present in the grid, ascending.
func (g *DualGrid) DoorIDs() []uint32 {
	ids := make([]uint32, 0, len(g.doors))
	for id := range g.doors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
