package progressclock_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	progressclock "github.com/Mictilt/progress-clock"
)

const tolerance = 1e-6

func TestClockSpec_Wedges(t *testing.T) {
	spec := progressclock.ClockSpec{Sections: 4, Filled: 1, Color: "#47a", Size: 200}

	var got []progressclock.Wedge
	for w := range spec.Wedges() {
		got = append(got, w)
	}

	want := []progressclock.Wedge{
		{Index: 0, StartAngle: -90, EndAngle: 0, Filled: true},
		{Index: 1, StartAngle: 0, EndAngle: 90},
		{Index: 2, StartAngle: 90, EndAngle: 180},
		{Index: 3, StartAngle: 180, EndAngle: 270},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("Wedges() mismatch (-want +got):\n%s", diff)
	}
}

func TestClockSpec_WedgesTileTheDisk(t *testing.T) {
	for _, sections := range []int{1, 2, 3, 7, 8, 12, 360, 1000} {
		spec := progressclock.ClockSpec{Sections: sections, Size: 200, Color: "#47a"}

		var (
			count int
			total float64
			prev  *progressclock.Wedge
		)
		for w := range spec.Wedges() {
			if prev != nil {
				assert.InDelta(t, prev.EndAngle, w.StartAngle, tolerance, "gap before wedge %d", w.Index)
			}
			total += w.Span()
			count++
			prev = &w
		}

		assert.Equal(t, sections, count)
		assert.InDelta(t, 360.0, total, tolerance, "sections=%d", sections)
	}
}

func TestClockSpec_WedgesFilled(t *testing.T) {
	spec := progressclock.ClockSpec{Sections: 8, Filled: 3, Size: 200, Color: "#47a"}

	for w := range spec.Wedges() {
		assert.Equal(t, w.Index < 3, w.Filled, "wedge %d", w.Index)
	}
}

func TestClockSpec_WedgesStopEarly(t *testing.T) {
	spec := progressclock.ClockSpec{Sections: 8, Size: 200, Color: "#47a"}

	seen := 0
	for range spec.Wedges() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestClockSpec_FirstWedgeStartsAtTop(t *testing.T) {
	for _, sections := range []int{1, 3, 8, 13} {
		spec := progressclock.ClockSpec{Sections: sections, Size: 200, Color: "#47a"}

		x, y := spec.Point(spec.Wedge(0).StartAngle)
		assert.InDelta(t, spec.Center(), x, tolerance)
		assert.InDelta(t, spec.Center()-spec.Radius(), y, tolerance)
	}
}

func TestClockSpec_Point(t *testing.T) {
	spec := progressclock.ClockSpec{Sections: 4, Size: 100, Color: "#47a"}

	testCases := []struct {
		angle float64
		x, y  float64
	}{
		{angle: -90, x: 50, y: 5},
		{angle: 0, x: 95, y: 50},
		{angle: 90, x: 50, y: 95},
		{angle: 180, x: 5, y: 50},
	}
	for _, tc := range testCases {
		x, y := spec.Point(tc.angle)
		assert.InDelta(t, tc.x, x, tolerance, "x at %v", tc.angle)
		assert.InDelta(t, tc.y, y, tolerance, "y at %v", tc.angle)
	}
}
