package grid

import (
	"testing"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

func lockDescriptor() mapdoc.Descriptor {
	return mapdoc.Descriptor{
		Size:  32,
		GoalX: 30, GoalY: 16,
		Doors: []mapdoc.Door{
			{X: 10, Y: 10, ID: 7, Dimension: core.Light},
			{X: 11, Y: 10, ID: 7, Dimension: core.Dark},
			{X: 12, Y: 10, ID: 8, Dimension: core.Light},
		},
		Keys: []mapdoc.Key{
			{X: 2, Y: 2, DoorID: 7, Dimension: core.Light},
			{X: 3, Y: 3, DoorID: 7, Dimension: core.Dark},
			{X: 4, Y: 4, DoorID: 8, Dimension: core.Dark},
			{X: 5, Y: 5, DoorID: 99, Dimension: core.Light},
		},
	}
}

func TestOpenDoorAffectsOnlyMatchingID(t *testing.T) {
	g := build(t, lockDescriptor())

	ev := g.OpenDoor(7)
	if !ev.Changed || ev.DoorID != 7 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if len(ev.Doors) != 2 || len(ev.Keys) != 2 {
		t.Errorf("event should list 2 doors and 2 keys, got %+v", ev)
	}

	for _, dim := range core.Dimensions() {
		g.Items(dim, func(c Cell) {
			switch it := c.Item.(type) {
			case Door:
				if want := it.ID == 7; it.Open != want {
					t.Errorf("door %d at (%d, %d) open = %v", it.ID, c.X, c.Y, it.Open)
				}
			case Key:
				if want := it.DoorID == 7; it.Taken != want {
					t.Errorf("key %d at (%d, %d) taken = %v", it.DoorID, c.X, c.Y, it.Taken)
				}
			}
		})
	}

	if !g.IsOpen(7) || g.IsOpen(8) {
		t.Error("lock registry out of sync")
	}
}

func TestOpenDoorCrossDimension(t *testing.T) {
	g := build(t, lockDescriptor())
	g.OpenDoor(8)

	c, _ := g.At(12, 10, core.Light)
	if Blocking(c.Item) {
		t.Error("door 8 in light should open from a key in dark")
	}
}

func TestOpenDoorIdempotent(t *testing.T) {
	g := build(t, lockDescriptor())
	g.OpenDoor(7)

	ev := g.OpenDoor(7)
	if ev.Changed || len(ev.Doors) != 0 || len(ev.Keys) != 0 {
		t.Errorf("second OpenDoor should be a no-op, got %+v", ev)
	}
	if ids := g.OpenedDoorIDs(); len(ids) != 1 || ids[0] != 7 {
		t.Errorf("OpenedDoorIDs() = %v", ids)
	}
}

func TestOpenDoorUnknownIDMarksKeys(t *testing.T) {
	g := build(t, lockDescriptor())

	ev := g.OpenDoor(99)
	if len(ev.Doors) != 0 || len(ev.Keys) != 1 {
		t.Errorf("unexpected event %+v", ev)
	}
	c, _ := g.At(5, 5, core.Light)
	if k, ok := c.Item.(Key); !ok || !k.Taken {
		t.Errorf("key for unknown door should be taken, got %#v", c.Item)
	}

	ev = g.OpenDoor(12345)
	if !ev.Changed || len(ev.Doors)+len(ev.Keys) != 0 {
		t.Errorf("id with nothing attached should only be recorded, got %+v", ev)
	}
}

func TestOpenedDoorsIsCopy(t *testing.T) {
	g := build(t, lockDescriptor())
	g.OpenDoor(8)

	set := g.OpenedDoors()
	set.Put(7)
	if g.IsOpen(7) {
		t.Error("mutating the returned set must not open doors")
	}
	if set.Size() != 2 || !set.Has(8) {
		t.Errorf("set size = %d", set.Size())
	}
}
