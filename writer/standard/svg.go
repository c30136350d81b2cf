package standard

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	svgo "github.com/ajstarks/svgo"

	progressclock "github.com/Mictilt/progress-clock"
)

const (
	_svgNamespace = "http://www.w3.org/2000/svg"
	_strokeColor  = "black"
	_strokeWidth  = 2
	_noFill       = "None"
)

// Lines returns the SVG document of the clock, one element per line. Each
// element is rendered when it is reached, and every range over the sequence
// renders the whole document afresh.
func Lines(spec progressclock.ClockSpec, opts ...ImageOption) iter.Seq[string] {
	return newOutputImageOption(opts...).lines(spec)
}

func (oo *outputImageOptions) lines(spec progressclock.ClockSpec) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(oo.header(spec)) {
			return
		}

		if spec.Ring && !oo.mask(spec, yield) {
			return
		}

		for w := range spec.Wedges() {
			if !yield(oo.wedge(spec, w)) {
				return
			}
		}

		// the hole outline goes last so no wedge covers its stroke
		if spec.Ring {
			c := spec.Center()
			if !yield(oo.circle(c, c, spec.HoleRadius(), fill(_noFill), stroke(), strokeWidth())) {
				return
			}
		}

		yield(element(func(canvas *svgo.SVG) {
			canvas.End()
		}))
	}
}

// header opens the document. The viewBox matches the canvas so user units
// are pixels.
func (oo *outputImageOptions) header(spec progressclock.ClockSpec) string {
	return fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="%s">`,
		spec.Size, spec.Size, spec.Size, spec.Size, _svgNamespace)
}

// mask defines the mask shared by every wedge in ring mode: white keeps, the
// black circle in the middle cuts. It reports whether yield asked to go on.
func (oo *outputImageOptions) mask(spec progressclock.ClockSpec, yield func(string) bool) bool {
	c := spec.Center()

	return yield(element(func(canvas *svgo.SVG) {
		canvas.Mask(oo.maskID, 0, 0, spec.Size, spec.Size, `maskUnits="userSpaceOnUse"`)
	})) &&
		yield(element(func(canvas *svgo.SVG) {
			canvas.Rect(0, 0, spec.Size, spec.Size, fill("white"))
		})) &&
		yield(oo.circle(c, c, spec.HoleRadius(), fill("black"))) &&
		yield(element(func(canvas *svgo.SVG) {
			canvas.MaskEnd()
		}))
}

func (oo *outputImageOptions) wedge(spec progressclock.ClockSpec, w progressclock.Wedge) string {
	c, r := spec.Center(), spec.Radius()

	recorder := newSVGPathRecorder(oo.precision)
	recorder.MoveTo(c, c)
	recorder.LineTo(spec.Point(w.StartAngle))
	if w.Span() >= 360 {
		// both ends of a full turn are the same point, which SVG would
		// render as no arc at all
		x, y := spec.Point(w.StartAngle + 180)
		recorder.ArcTo(r, x, y)
	}
	ex, ey := spec.Point(w.EndAngle)
	recorder.ArcTo(r, ex, ey)
	recorder.ClosePath()

	color := _noFill
	if w.Filled {
		color = spec.Color
	}

	attrs := []string{fill(color), stroke(), strokeWidth()}
	if spec.Ring {
		attrs = append(attrs, fmt.Sprintf(`mask="url(#%s)"`, oo.maskID))
	}

	return element(func(canvas *svgo.SVG) {
		canvas.Path(recorder.String(), attrs...)
	})
}

// circle is formatted like the path data, shortest form at the configured
// precision. svgo/float prints a fixed number of decimals (r="27.500"), so
// only the closing matches svgo's elements.
func (oo *outputImageOptions) circle(cx, cy, r float64, attrs ...string) string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" %s />`,
		formatFloat(cx, oo.precision), formatFloat(cy, oo.precision), formatFloat(r, oo.precision),
		strings.Join(attrs, " "))
}

// element renders a single svgo element and returns it without the trailing
// newline svgo appends.
func element(draw func(canvas *svgo.SVG)) string {
	var buf bytes.Buffer
	draw(svgo.New(&buf))
	return strings.TrimRight(buf.String(), "\n")
}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}

func stroke() string {
	return fmt.Sprintf(`stroke="%s"`, _strokeColor)
}

func strokeWidth() string {
	return fmt.Sprintf(`stroke-width="%d"`, _strokeWidth)
}
