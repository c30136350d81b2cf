// Package progressclock describes progress clocks, the segmented circles used
// by tabletop RPGs to track progress toward a goal.
//
// A clock is described by a ClockSpec obtained from Validate. Rendering it to
// SVG is done by the writer/standard package.
package progressclock

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultColor is the fill color of filled wedges.
	DefaultColor = "#47a"
	// DefaultSize is the width and height of the canvas.
	DefaultSize = 200

	radiusRatio = 0.9
	holeRatio   = 0.55
)

// ClockSpec is a validated clock configuration.
type ClockSpec struct {
	// Sections is the total number of wedges, always > 0.
	Sections int
	// Filled is the number of wedges drawn in Color, 0 <= Filled <= Sections.
	Filled int
	// Color is the normalized fill color, it always starts with '#'.
	Color string
	// Size is the canvas width and height.
	Size int
	// Ring cuts a hole in the middle of the clock.
	Ring bool
}

// Validate checks the raw clock parameters and builds a ClockSpec from them.
// Range problems are reported as *InvalidRangeError, a non positive size as
// ErrInvalidSize. A malformed color is not an error, see ClockSpec.Warnings.
func Validate(sections, filled int, color string, size int, ring bool) (ClockSpec, error) {
	if sections <= 0 || filled < 0 || sections < filled {
		return ClockSpec{}, &InvalidRangeError{Sections: sections, Filled: filled}
	}
	if size <= 0 {
		return ClockSpec{}, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}

	return ClockSpec{
		Sections: sections,
		Filled:   filled,
		Color:    NormalizeColor(color),
		Size:     size,
		Ring:     ring,
	}, nil
}

// NormalizeColor prepends '#' to color unless it already starts with one.
func NormalizeColor(color string) string {
	if strings.HasPrefix(color, "#") {
		return color
	}
	return "#" + color
}

// Warnings returns the non fatal problems of the spec. Currently the only one
// is a *MalformedColorWarning.
func (s ClockSpec) Warnings() []error {
	if n := len(s.Color); n != 4 && n != 7 {
		return []error{&MalformedColorWarning{Color: s.Color}}
	}
	return nil
}

// Center returns the coordinate of the clock center on both axes.
func (s ClockSpec) Center() float64 {
	return float64(s.Size) / 2
}

// Radius returns the radius of the outer circle.
func (s ClockSpec) Radius() float64 {
	return s.Center() * radiusRatio
}

// HoleRadius returns the radius of the hole cut in ring mode.
func (s ClockSpec) HoleRadius() float64 {
	return s.Center() * holeRatio
}
