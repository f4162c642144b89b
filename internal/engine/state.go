package engine

import (
	"errors"
	"fmt"
)

// State is the game-level state of a running level.
type State uint8

const (
	Playing State = iota
	Over
	Win
	Menu
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Over:
		return "over"
	case Win:
		return "win"
	case Menu:
		return "menu"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// ErrInvalidTransition is returned for a transition the state machine forbids.
var ErrInvalidTransition = errors.New("invalid state transition")

var transitions = map[State][]State{
	Playing: {Over, Win},
	Over:    {Playing, Menu},
	Win:     {Menu},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition returns to if from -> to is allowed.
func Transition(from, to State) (State, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}
