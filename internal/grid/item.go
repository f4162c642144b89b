package grid

import "fmt"

// Kind identifies the variant held by an Item.
type Kind uint8

const (
	KindNone Kind = iota
	KindWall
	KindDoor
	KindKey
	KindGoal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindKey:
		return "key"
	case KindGoal:
		return "goal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Item is the content of a cell. It is one of Wall, Door, Key or Goal;
// an empty cell holds a nil Item.
type Item interface {
	Kind() Kind
	sealed()
}

// Wall is a solid block.
type Wall struct{}

// Door blocks movement until it is opened.
type Door struct {
	ID   uint32
	Open bool
}

// Key opens the doors with a matching id when picked up.
type Key struct {
	DoorID uint32
	Taken  bool
}

// Goal ends the level with a win.
type Goal struct{}

func (Wall) Kind() Kind { return KindWall }
func (Door) Kind() Kind { return KindDoor }
func (Key) Kind() Kind  { return KindKey }
func (Goal) Kind() Kind { return KindGoal }

func (Wall) sealed() {}
func (Door) sealed() {}
func (Key) sealed()  {}
func (Goal) sealed() {}

// KindOf returns the kind of it, KindNone for nil.
func KindOf(it Item) Kind {
	if it == nil {
		return KindNone
	}
	return it.Kind()
}

// Blocking reports whether it stops the player on contact.
func Blocking(it Item) bool {
	switch v := it.(type) {
	case Wall:
		return true
	case Door:
		return !v.Open
	default:
		return false
	}
}
