package gnuplot

import (
	"math"
	"strconv"
	"strings"
)

// Range is an axis range. A NaN bound is left to gnuplot's autoscaling.
type Range struct {
	Min, Max float64
}

// OpenRange returns a range with both bounds on auto.
func OpenRange() Range {
	return Range{Min: math.NaN(), Max: math.NaN()}
}

// String returns the range in gnuplot syntax, see FormatRange.
func (r Range) String() string {
	return FormatRange(r.Min, r.Max)
}

// FormatRange renders a bound pair as "[min:max]". A NaN bound becomes "*";
// if both bounds are NaN the empty range "[]" is returned.
func FormatRange(min, max float64) string {
	if math.IsNaN(min) && math.IsNaN(max) {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	writeBound(&b, min)
	b.WriteByte(':')
	writeBound(&b, max)
	b.WriteByte(']')
	return b.String()
}

func writeBound(b *strings.Builder, v float64) {
	if math.IsNaN(v) {
		b.WriteByte('*')
		return
	}
	b.WriteString(formatFloat(v))
}

// formatFloat is the shortest representation which parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// axes is the x/y/z range triple of a session.
type axes struct {
	x, y, z Range
}

func openAxes() axes {
	return axes{x: OpenRange(), y: OpenRange(), z: OpenRange()}
}

// SetXRange sets the x axis range used by the next Show. Pass NaN for a
// bound gnuplot should choose.
func (g *Gnuplot) SetXRange(min, max float64) { g.ranges.x = Range{min, max} }

// SetYRange is like SetXRange for the y axis.
func (g *Gnuplot) SetYRange(min, max float64) { g.ranges.y = Range{min, max} }

// SetZRange is like SetXRange for the z axis.
func (g *Gnuplot) SetZRange(min, max float64) { g.ranges.z = Range{min, max} }

// Ranges returns the current x, y and z ranges.
func (g *Gnuplot) Ranges() (x, y, z Range) {
	return g.ranges.x, g.ranges.y, g.ranges.z
}
