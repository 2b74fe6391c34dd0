package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownChart indicates a name missing from the registry.
	ErrUnknownChart = errors.New("chart: unknown chart")

	// ErrFrameRange indicates a frame index or count outside the chart's range.
	ErrFrameRange = errors.New("chart: frame out of range")

	// ErrUnknownLabels indicates a label set name that is not built in.
	ErrUnknownLabels = errors.New("chart: unknown label set")
)

// FrameError wraps a failure with the frame it happened in.
type FrameError struct {
	Chart   string
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s frame %d: %v", e.Chart, e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
