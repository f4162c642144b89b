// Package engine runs the per-tick simulation of a level: movement,
// collision against the active dimension, key pickup and dimension switching.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/grid"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
	"github.com/vovakirdan/veiled-path/internal/tutorial"
)

// Input is the per-tick input of the simulation.
type Input struct {
	Move        core.Vec2 // Analog direction, each axis in [-1, 1]
	Acknowledge bool      // Edge: dismiss a hint or switch dimension
}

// TickResult describes what a tick changed.
type TickResult struct {
	State            State
	Died             bool
	Won              bool
	Unlocks          []grid.Unlock
	DimensionChanged bool
	Dimension        core.Dimension
	MessageDismissed bool
}

// Level owns the state of one level run.
type Level struct {
	desc  mapdoc.Descriptor
	grid  *grid.DualGrid
	state State

	player Player
	dim    core.Dimension
	tut    *tutorial.Sequencer

	ticks  uint64
	deaths int

	newTutorial func() *tutorial.Sequencer
	gridOpts    []grid.Option
	logger      *log.Logger
}

// Option configures a Level.
type Option func(*Level)

// WithTutorial attaches a hint sequencer. The factory is called on every
// (re)start so retries replay the hints. Without a tutorial, switching is
// always allowed.
func WithTutorial(factory func() *tutorial.Sequencer) Option {
	return func(l *Level) {
		l.newTutorial = factory
	}
}

// WithLogger sets the logger for grid warnings and level events.
// A nil logger discards them.
func WithLogger(logger *log.Logger) Option {
	return func(l *Level) {
		l.logger = logger
	}
}

// New creates a level in the Playing state.
func New(d mapdoc.Descriptor, opts ...Option) *Level {
	l := &Level{desc: d, logger: log.Default()}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	l.gridOpts = []grid.Option{grid.WithLogger(l.logger)}
	l.start()
	return l
}

func (l *Level) start() {
	l.grid = grid.Build(l.desc, l.gridOpts...)
	l.player = spawn(l.desc.StartX, l.desc.StartY, l.desc.GoalX, l.desc.GoalY)
	l.dim = core.Light
	l.state = Playing
	l.ticks = 0
	l.tut = nil
	if l.newTutorial != nil {
		l.tut = l.newTutorial()
	}
}

// Descriptor returns the map the level was built from.
func (l *Level) Descriptor() mapdoc.Descriptor { return l.desc }

// Grid returns the live grid. Callers must not mutate it.
func (l *Level) Grid() *grid.DualGrid { return l.grid }

// State returns the current state.
func (l *Level) State() State { return l.state }

// Dimension returns the active dimension.
func (l *Level) Dimension() core.Dimension { return l.dim }

// Player returns a copy of the player.
func (l *Level) Player() Player { return l.player }

// Deaths returns how many times the level ended in Over.
func (l *Level) Deaths() int { return l.deaths }

// SwitchAllowed reports whether the player may change dimension.
func (l *Level) SwitchAllowed() bool {
	return l.tut == nil || l.tut.SwitchEnabled()
}

// Retry restarts an Over level with a fresh grid.
func (l *Level) Retry() error {
	if _, err := Transition(l.state, Playing); err != nil {
		return err
	}
	l.start()
	return nil
}

// Leave moves a finished level to Menu.
func (l *Level) Leave() error {
	next, err := Transition(l.state, Menu)
	if err != nil {
		return err
	}
	l.state = next
	return nil
}

// Tick advances the simulation by dt seconds. It does nothing outside Playing.
func (l *Level) Tick(in Input, dt float64) TickResult {
	res := TickResult{State: l.state, Dimension: l.dim}
	if l.state != Playing {
		return res
	}
	l.ticks++

	if l.tut != nil {
		l.tut.Check(l.player.Column())
		if l.tut.Active() {
			if in.Acknowledge {
				res.MessageDismissed = l.tut.Dismiss()
			}
			return res
		}
	}

	l.player.move(in.Move, dt)
	l.interact(&res)

	if l.state == Playing && in.Acknowledge && l.SwitchAllowed() {
		l.dim.Switch()
		res.DimensionChanged = true
		res.Dimension = l.dim
	}

	res.State = l.state
	return res
}

// interact probes the 3x3 neighborhood of the player in the active dimension.
// Cells outside the grid act as walls. A collision with a wall outranks
// reaching the goal in the same tick.
func (l *Level) interact(res *TickResult) {
	body := l.player.Body()
	cx, cy := l.player.Pos.Floor()
	dead, won := false, false

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			x, y := cx+dx, cy+dy
			cell, ok := l.grid.At(x, y, l.dim)
			if !ok {
				cell = grid.Cell{X: x, Y: y, Item: grid.Wall{}}
			}
			center := core.V(float64(x), float64(y))

			switch it := cell.Item.(type) {
			case nil:
			case grid.Wall:
				if core.CircleBoxOverlap(body, core.Box{Center: center, Half: core.BlockHalfSize}) {
					dead = true
				}
			case grid.Door:
				if !it.Open && core.CircleBoxOverlap(body, core.Box{Center: center, Half: core.BlockHalfSize}) {
					dead = true
				}
			case grid.Key:
				if !it.Taken && core.CirclesOverlap(body, core.Circle{Center: center, R: core.PickupRadius}) {
					ev := l.grid.OpenDoor(it.DoorID)
					res.Unlocks = append(res.Unlocks, ev)
					l.logger.Debug("key picked up", "door", it.DoorID, "doors", len(ev.Doors), "x", x, "y", y)
				}
			case grid.Goal:
				if core.CirclesOverlap(body, core.Circle{Center: center, R: core.PickupRadius}) {
					won = true
				}
			default:
				panic("engine: unhandled item kind " + it.Kind().String())
			}
		}
	}

	switch {
	case dead:
		l.state, _ = Transition(l.state, Over)
		l.deaths++
		res.Died = true
	case won:
		l.state, _ = Transition(l.state, Win)
		res.Won = true
	}
}
