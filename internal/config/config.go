// Package config provides YAML-based settings loading for the game and its
// front ends.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all user-tunable settings.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Terminal TerminalConfig `yaml:"terminal"`
	GUI      GUIConfig      `yaml:"gui"`
	Log      LogConfig      `yaml:"log"`
	Tutorial TutorialConfig `yaml:"tutorial"`
}

// GameConfig defines simulation and content settings.
type GameConfig struct {
	TickRate int    `yaml:"tick_rate"` // Simulation ticks per second
	Language string `yaml:"language"`  // Catalog language, empty for the environment
	MapsDir  string `yaml:"maps_dir"`  // Extra directory scanned for custom maps
	Pack     string `yaml:"pack"`      // Optional level pack database
}

// TerminalConfig defines the terminal front end.
type TerminalConfig struct {
	// Terminals report key presses but not releases, so a direction stays
	// held for this long after its last repeat.
	HoldWindowMs int  `yaml:"hold_window_ms"`
	ShowOther    bool `yaml:"show_other"` // Draw the other dimension's walls dimmed
}

// GUIConfig defines the desktop window front end.
type GUIConfig struct {
	CellSize    int     `yaml:"cell_size"`    // Pixels per grid unit
	FadeSeconds float64 `yaml:"fade_seconds"` // Dimension switch fade duration
	Fullscreen  bool    `yaml:"fullscreen"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file for interactive sessions
}

// TutorialConfig defines tutorial content.
type TutorialConfig struct {
	Script string `yaml:"script"` // Path to a YAML script, empty for the built-in one
}

// HoldWindow returns the terminal hold window as a duration.
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Terminal.HoldWindowMs) * time.Millisecond
}

// LogLevel parses Log.Level, defaulting to info.
func (c Config) LogLevel() log.Level {
	if c.Log.Level == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Game.TickRate < 1 || c.Game.TickRate > 240 {
		return fmt.Errorf("game.tick_rate must be between 1 and 240, got %d", c.Game.TickRate)
	}
	if c.Terminal.HoldWindowMs < 0 {
		return fmt.Errorf("terminal.hold_window_ms must not be negative, got %d", c.Terminal.HoldWindowMs)
	}
	if c.GUI.CellSize < 4 {
		return fmt.Errorf("gui.cell_size must be at least 4, got %d", c.GUI.CellSize)
	}
	if c.GUI.FadeSeconds < 0 {
		return fmt.Errorf("gui.fade_seconds must not be negative, got %v", c.GUI.FadeSeconds)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}
