package config

import (
	_ "embed"
)

//go:embed defaults/veiled.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: 60,
		},
		Terminal: TerminalConfig{
			HoldWindowMs: 150,
			ShowOther:    true,
		},
		GUI: GUIConfig{
			CellSize:    40,
			FadeSeconds: 0.35,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.veiled/veiled.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
