package mapdoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a map document and validates it.
// JSON input is accepted as is; YAML is accepted as an authoring convenience.
func Parse(data []byte) (Descriptor, error) {
	return parse(data, "")
}

// LoadFile reads and parses the map document at path.
func LoadFile(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: reading %s: %w", ErrLoad, path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (Descriptor, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Descriptor{}, &ParseError{Source: source, Err: errors.New("empty document")}
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, &ParseError{Source: source, Err: err}
	}

	if err := Validate(d); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Validate checks the load-time invariants of d.
// Out-of-range placements are not errors here; the grid builder drops them.
func Validate(d Descriptor) error {
	if d.Size <= 0 {
		return ValidationError{
			Code:    CodeSizeNotPositive,
			Message: fmt.Sprintf("size must be a positive multiple of %d, got %d", AspectColumns, d.Size),
		}
	}
	if d.Size%AspectColumns != 0 {
		return ValidationError{
			Code:    CodeSizeNotMultiple,
			Message: fmt.Sprintf("size must be a multiple of %d, got %d", AspectColumns, d.Size),
		}
	}
	return nil
}
