package spectrum

import (
	"errors"
	"fmt"
)

// Errors returned by spectrum functions.
var (
	ErrEmpty          = errors.New("spectrum: empty input")
	ErrLengthMismatch = errors.New("spectrum: wavelength/value length mismatch")
	ErrUnsorted       = errors.New("spectrum: wavelengths must be non-decreasing")
	ErrParse          = errors.New("spectrum: invalid numeric literal")
	ErrInvalidSigma   = errors.New("spectrum: smoothing sigma must be finite and >= 0")
	ErrNonFinite      = errors.New("spectrum: wavelengths must be finite")
)

// ParseError reports a line that is not a floating-point literal.
type ParseError struct {
	Source string // file name, empty for plain readers
	Line   int    // 1-based
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("spectrum: %s:%d: invalid numeric literal %q: %v", e.Source, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("spectrum: line %d: invalid numeric literal %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap lets errors.Is match both ErrParse and the strconv cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
