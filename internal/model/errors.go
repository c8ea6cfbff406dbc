package model

import (
	"errors"
	"fmt"
)

var (
	// ErrShortDocument is returned when a document lacks the title or axis line.
	ErrShortDocument = errors.New("document must contain a title line and an axis label line")

	// ErrInvalidConfig is returned for configuration values that cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// LineError is implemented by errors tied to a document line.
type LineError interface {
	error
	LineNumber() int
}

// MissingFieldError reports a record with an empty or absent field.
type MissingFieldError struct {
	Line int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Error on line %d: data is missing", e.Line)
}

// LineNumber returns the 1-based document line.
func (e *MissingFieldError) LineNumber() int { return e.Line }

// InvalidNumberError reports a magnitude that is not a non-negative real number.
type InvalidNumberError struct {
	Line    int
	Literal string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("Error on line %d: %s is not a valid number", e.Line, e.Literal)
}

// LineNumber returns the 1-based document line.
func (e *InvalidNumberError) LineNumber() int { return e.Line }

// EmptyDiagramError reports a diagram with nothing to distribute.
type EmptyDiagramError struct {
	Flows int
}

func (e *EmptyDiagramError) Error() string {
	if e.Flows == 0 {
		return "diagram has no flows"
	}
	return fmt.Sprintf("diagram magnitudes sum to zero across %d flows", e.Flows)
}

// OverflowError reports more flows than the canvas can separate with gaps.
type OverflowError struct {
	Flows       int
	TotalHeight float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%d flows leave no room for bars (total height %.1f)", e.Flows, e.TotalHeight)
}

// FileError reports an input document that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("File %s not found or is not readable.", e.Path)
}

func (e *FileError) Unwrap() error { return e.Err }
