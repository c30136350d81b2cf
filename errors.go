package progressclock

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSize means the canvas can not hold a clock.
var ErrInvalidSize = errors.New("canvas size must be positive")

// InvalidRangeError is returned by Validate when the section counts do not
// describe a drawable clock.
type InvalidRangeError struct {
	Sections int
	Filled   int
}

func (e *InvalidRangeError) Error() string {
	switch {
	case e.Sections <= 0:
		return fmt.Sprintf("number of sections must be positive, got %d", e.Sections)
	case e.Filled < 0:
		return fmt.Sprintf("number of filled sections can't be negative, got %d", e.Filled)
	default:
		return fmt.Sprintf("can't fill more sections than exist (%d/%d)", e.Filled, e.Sections)
	}
}

// MalformedColorWarning reports a color that is neither #rgb nor #rrggbb.
// It is advisory: the color is still written into the image as given.
type MalformedColorWarning struct {
	Color string
}

func (w *MalformedColorWarning) Error() string {
	return fmt.Sprintf("color %q must be a standard RGB format such as #4aa or #4071af", w.Color)
}
