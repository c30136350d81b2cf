package standard

import (
	"strconv"
	"strings"
)

// svgPathRecorder records drawing operations and converts them to the d
// attribute of an SVG path.
type svgPathRecorder struct {
	commands  []string
	precision int
}

func newSVGPathRecorder(precision int) *svgPathRecorder {
	return &svgPathRecorder{
		precision: precision,
	}
}

func (r *svgPathRecorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, "M"+r.point(x, y))
}

func (r *svgPathRecorder) LineTo(x, y float64) {
	r.commands = append(r.commands, "L"+r.point(x, y))
}

// ArcTo draws the clockwise minor arc of a circle with the given radius from
// the current point to (x, y).
func (r *svgPathRecorder) ArcTo(radius, x, y float64) {
	rr := r.format(radius)
	r.commands = append(r.commands, "A"+rr+","+rr+" 0 0,1 "+r.point(x, y))
}

func (r *svgPathRecorder) ClosePath() {
	r.commands = append(r.commands, "Z")
}

func (r *svgPathRecorder) String() string {
	return strings.Join(r.commands, " ")
}

func (r *svgPathRecorder) point(x, y float64) string {
	return r.format(x) + "," + r.format(y)
}

func (r *svgPathRecorder) format(v float64) string {
	return formatFloat(v, r.precision)
}

// formatFloat prints v rounded to precision decimals without trailing zeros,
// so 27.5 stays "27.5" and 100.0000000001 becomes "100".
func formatFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
