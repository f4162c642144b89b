package mapdoc

import (
	"errors"
	"fmt"
)

// ErrLoad matches every failure to turn map bytes into a Descriptor.
// Use errors.As with *ParseError or ValidationError for details.
var ErrLoad = errors.New("mapdoc: load failed")

// ParseError reports malformed map input.
type ParseError struct {
	Source string // File path or bundled name, empty for raw bytes
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("mapdoc: parse: %v", e.Err)
	}
	return fmt.Sprintf("mapdoc: parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLoad) match parse failures.
func (e *ParseError) Is(target error) bool { return target == ErrLoad }

// Validation error codes.
const (
	CodeSizeNotMultiple = "SIZE_NOT_MULTIPLE_OF_16"
	CodeSizeNotPositive = "SIZE_NOT_POSITIVE"
)

// ValidationError reports a well-formed map that breaks a load-time invariant.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrLoad) match validation failures.
func (e ValidationError) Is(target error) bool { return target == ErrLoad }
