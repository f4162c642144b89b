package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// Direction is one of the four movement keys.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	dirCount
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action or a movement direction.
// Returns whether the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, dir Direction, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, DirNone, true
	case "w", "up", "k":
		return core.ActionNone, DirUp, false
	case "s", "down", "j":
		return core.ActionNone, DirDown, false
	case "a", "left", "h":
		return core.ActionNone, DirLeft, false
	case "d", "right", "l":
		return core.ActionNone, DirRight, false
	case " ", "enter":
		return core.ActionAcknowledge, DirNone, false
	case "r":
		return core.ActionRetry, DirNone, false
	case "b", "esc":
		return core.ActionBack, DirNone, false
	}
	return core.ActionNone, DirNone, false
}

// repeatDelay covers the pause most terminals leave between the first
// key press and the first auto-repeat.
const repeatDelay = 500 * time.Millisecond

// HeldKeys approximates held movement keys. Terminals deliver presses and
// auto-repeats but never releases, so a direction counts as held until no
// press arrives within the hold window.
type HeldKeys struct {
	window time.Duration
	until  [dirCount]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{window: window}
}

// Press records a press or auto-repeat of d at time at.
func (h *HeldKeys) Press(d Direction, at time.Time) {
	if d <= DirNone || d >= dirCount {
		return
	}
	hold := h.window
	if at.After(h.until[d]) && hold < repeatDelay {
		// First press: keep moving until the terminal starts repeating.
		hold = repeatDelay
	}
	h.until[d] = at.Add(hold)

	// Pressing a direction releases its opposite.
	switch d {
	case DirUp:
		h.until[DirDown] = time.Time{}
	case DirDown:
		h.until[DirUp] = time.Time{}
	case DirLeft:
		h.until[DirRight] = time.Time{}
	case DirRight:
		h.until[DirLeft] = time.Time{}
	}
}

// Held reports whether d is held at time now.
func (h *HeldKeys) Held(d Direction, now time.Time) bool {
	if d <= DirNone || d >= dirCount {
		return false
	}
	return !now.After(h.until[d])
}

// Move returns the movement vector for the directions held at time now.
func (h *HeldKeys) Move(now time.Time) core.Vec2 {
	var v core.Vec2
	if h.Held(DirUp, now) {
		v.Y--
	}
	if h.Held(DirDown, now) {
		v.Y++
	}
	if h.Held(DirLeft, now) {
		v.X--
	}
	if h.Held(DirRight, now) {
		v.X++
	}
	return v
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	h.until = [dirCount]time.Time{}
}
