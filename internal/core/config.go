package core

// RuntimeConfig contains configuration passed to a level at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Phase is the level-level state reported to the platform.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseOver    Phase = "over"
	PhaseWin     Phase = "win"
	PhaseMenu    Phase = "menu"
)

// GameState represents the current state of a level.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase  Phase
	Deaths int    // Deaths since the level was entered
	Ticks  uint64 // Ticks spent in the current attempt
}

// Finished reports whether the platform should leave the level view.
func (s GameState) Finished() bool {
	return s.Phase == PhaseMenu
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
