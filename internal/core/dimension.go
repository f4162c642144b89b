package core

import "fmt"

// Dimension is one of the two parallel overlays of a level.
type Dimension uint8

const (
	Light Dimension = iota
	Dark
)

// DimensionCount is the number of dimensions a level has.
const DimensionCount = 2

// Dimensions returns both dimensions in storage order.
func Dimensions() [DimensionCount]Dimension {
	return [DimensionCount]Dimension{Light, Dark}
}

// String returns the serialized name of the dimension.
func (d Dimension) String() string {
	switch d {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("dimension(%d)", uint8(d))
	}
}

// Other returns the opposite dimension.
func (d Dimension) Other() Dimension {
	if d == Light {
		return Dark
	}
	return Light
}

// Switch toggles the dimension in place.
func (d *Dimension) Switch() {
	*d = d.Other()
}

// ParseDimension parses the serialized names "light" and "dark".
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown dimension %q (want \"light\" or \"dark\")", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	if d != Light && d != Dark {
		return nil, fmt.Errorf("invalid dimension %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
