package progressclock

import (
	"iter"
	"math"
)

// topOffset rotates the first wedge from 3 o'clock to 12 o'clock.
const topOffset = -90.0

// Wedge is one of the equal angular slices of a clock. Angles are in degrees,
// clockwise, with 0 pointing right as in SVG user space.
type Wedge struct {
	Index      int
	StartAngle float64
	EndAngle   float64
	Filled     bool
}

// Span returns the angle covered by the wedge.
func (w Wedge) Span() float64 {
	return w.EndAngle - w.StartAngle
}

// Step returns the angle covered by every wedge of the clock.
func (s ClockSpec) Step() float64 {
	return 360 / float64(s.Sections)
}

// Wedge returns the i-th wedge of the clock.
func (s ClockSpec) Wedge(i int) Wedge {
	step := s.Step()
	start := float64(i)*step + topOffset

	return Wedge{
		Index:      i,
		StartAngle: start,
		EndAngle:   start + step,
		Filled:     i < s.Filled,
	}
}

// Wedges yields every wedge of the clock in ascending index order.
func (s ClockSpec) Wedges() iter.Seq[Wedge] {
	return func(yield func(Wedge) bool) {
		for i := 0; i < s.Sections; i++ {
			if !yield(s.Wedge(i)) {
				return
			}
		}
	}
}

// Point returns the point of the outer circle at angle degrees.
func (s ClockSpec) Point(angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	c, r := s.Center(), s.Radius()
	return math.Cos(rad)*r + c, math.Sin(rad)*r + c
}
