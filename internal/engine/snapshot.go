package engine

import "github.com/vovakirdan/veiled-path/internal/core"

// Snapshot is a read-only view of a level for presentation.
type Snapshot struct {
	Name          string
	Tick          uint64
	State         State
	Player        Player
	Dimension     core.Dimension
	SwitchAllowed bool
	Message       string
	HasMessage    bool
	OpenedDoors   []uint32
	Deaths        int
	Width, Height int
}

// Snapshot captures the current level state.
func (l *Level) Snapshot() Snapshot {
	s := Snapshot{
		Name:          l.desc.Name,
		Tick:          l.ticks,
		State:         l.state,
		Player:        l.player,
		Dimension:     l.dim,
		SwitchAllowed: l.SwitchAllowed(),
		OpenedDoors:   l.grid.OpenedDoorIDs(),
		Deaths:        l.deaths,
		Width:         l.grid.Width(),
		Height:        l.grid.Height(),
	}
	if l.tut != nil {
		if m, ok := l.tut.Current(); ok {
			s.Message = m.Text
			s.HasMessage = true
		}
	}
	return s
}
