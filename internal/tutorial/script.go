package tutorial

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed scripts/tutorial.yaml
var defaultScript []byte

// Script is a serialized tutorial: the unlock column and the hints in order.
// Texts are message ids resolved through a translator.
type Script struct {
	UnlockColumn int          `yaml:"unlock_column"`
	Messages     []ScriptLine `yaml:"messages"`
}

// ScriptLine is one hint of a Script.
type ScriptLine struct {
	Column int    `yaml:"column"`
	Text   string `yaml:"text"`
}

// ParseScript decodes a YAML tutorial script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parsing tutorial script: %w", err)
	}
	for i, m := range s.Messages {
		if m.Text == "" {
			return Script{}, fmt.Errorf("tutorial script: message %d has no text", i)
		}
	}
	return s, nil
}

// LoadScript reads a YAML tutorial script from disk.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading tutorial script %s: %w", path, err)
	}
	return ParseScript(data)
}

// DefaultScript returns the built-in tutorial.
func DefaultScript() Script {
	s, err := ParseScript(defaultScript)
	if err != nil {
		panic(fmt.Sprintf("embedded tutorial script is invalid: %v", err))
	}
	return s
}

// Sequencer builds a fresh sequencer from the script. tr translates each
// text; nil keeps the texts as written.
func (s Script) Sequencer(tr func(string) string) *Sequencer {
	seq := New(s.UnlockColumn)
	for _, m := range s.Messages {
		text := m.Text
		if tr != nil {
			text = tr(text)
		}
		seq.Add(text, m.Column)
	}
	return seq
}
