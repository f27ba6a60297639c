package gnuplot

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// series is one data block queued for the plot statement.
type series struct {
	data  string // rows of space separated values
	using string // column spec like "1:2"
	style LineStyle
	title string
}

// function is a surface z = f(x,y) given as a gnuplot expression.
type function struct {
	expr  string
	plane bool // planes are drawn without the pm3d color gradient
	title string
}

// dot is a labeled marker drawn on top of a function plot.
type dot struct {
	coords []float64
	title  string
}

// addSeries encodes cols and queues them. An empty first column is
// silently ignored.
func (g *Gnuplot) addSeries(title string, style LineStyle, dim Dimension, cols ...[]float64) error {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil
	}
	if g.dim != Unset && g.dim != dim {
		return &DimensionError{Session: g.dim, Series: dim}
	}
	block, using, err := EncodeColumns(cols...)
	if err != nil {
		return err
	}
	g.series = append(g.series, series{data: block, using: using, style: style, title: title})
	g.dim = dim
	return nil
}

// Plot queues y plotted against its index.
func (g *Gnuplot) Plot(y []float64, title string, style LineStyle) error {
	return g.addSeries(title, style, TwoD, y)
}

// PlotXY queues the points (x[i], y[i]).
func (g *Gnuplot) PlotXY(x, y []float64, title string, style LineStyle) error {
	return g.addSeries(title, style, TwoD, x, y)
}

// PlotXYer queues the points of a gonum XYer, e.g. plotter.XYs.
func (g *Gnuplot) PlotXYer(xy plotter.XYer, title string, style LineStyle) error {
	x, y := xysOf(xy)
	return g.addSeries(title, style, TwoD, x, y)
}

// PlotValues queues the values of a gonum Valuer against their index.
func (g *Gnuplot) PlotValues(v plotter.Valuer, title string, style LineStyle) error {
	return g.addSeries(title, style, TwoD, valuesOf(v))
}

// PlotXErr queues points with horizontal error bars.
func (g *Gnuplot) PlotXErr(x, y, xerr []float64, title string) error {
	return g.addSeries(title, XErrorBars, TwoD, x, y, xerr)
}

// PlotYErr queues points with vertical error bars.
func (g *Gnuplot) PlotYErr(x, y, yerr []float64, title string) error {
	return g.addSeries(title, YErrorBars, TwoD, x, y, yerr)
}

// PlotXYErr queues points with horizontal and vertical error bars.
func (g *Gnuplot) PlotXYErr(x, y, xerr, yerr []float64, title string) error {
	return g.addSeries(title, XYErrorBars, TwoD, x, y, xerr, yerr)
}

// PlotVectors queues arrows from (x,y) to (x+vx, y+vy).
func (g *Gnuplot) PlotVectors(x, y, vx, vy []float64, title string) error {
	return g.addSeries(title, Vectors, TwoD, x, y, vx, vy)
}

// Plot3D queues the points (x[i], y[i], z[i]) for a surface plot.
func (g *Gnuplot) Plot3D(x, y, z []float64, title string, style LineStyle) error {
	return g.addSeries(title, style, ThreeD, x, y, z)
}

// PlotVectors3D queues 3D arrows from (x,y,z) to (x+vx, y+vy, z+vz).
func (g *Gnuplot) PlotVectors3D(x, y, z, vx, vy, vz []float64, title string) error {
	return g.addSeries(title, Vectors, ThreeD, x, y, z, vx, vy, vz)
}

// Plot3DFunc queues the surface z = expr(x,y), e.g. "sin(x)*cos(y)".
// Once a function is queued Show draws a function plot instead of the
// point series. With gradient the surface is colored by height;
// without it is drawn as a plain mesh.
func (g *Gnuplot) Plot3DFunc(expr, title string, gradient bool) {
	g.funcs = append(g.funcs, function{expr: expr, plane: !gradient, title: title})
}

// PlotDot queues a labeled marker at coords, which must hold 2 or 3
// values. A 2D coordinate is drawn at z = 0. Dots are only drawn
// together with functions queued by Plot3DFunc.
func (g *Gnuplot) PlotDot(coords []float64, title string) error {
	if len(coords) != 2 && len(coords) != 3 {
		return fmt.Errorf("%w, got %d", ErrBadPoint, len(coords))
	}
	c := make([]float64, 3)
	copy(c, coords)
	g.dots = append(g.dots, dot{coords: c, title: title})
	return nil
}

// -------------------------------------------------------------------------
// Figures

// figure composes the final plot statement of a Show.
type figure interface {
	compose(b *strings.Builder, r axes)
}

// seriesPlot plots the queued data blocks with plot or splot.
type seriesPlot struct {
	dim    Dimension
	series []series
}

func (p seriesPlot) compose(b *strings.Builder, r axes) {
	if p.dim == ThreeD {
		b.WriteString("set hidden3d\nset dgrid3d 40,40\nset pm3d\n")
		fmt.Fprintf(b, "splot %s %s %s ", r.x, r.y, r.z)
	} else {
		fmt.Fprintf(b, "plot %s %s ", r.x, r.y)
	}
	for i, s := range p.series {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s using %s with %s title %s", blockName(i), s.using, s.style, quote(s.title))
	}
	b.WriteByte('\n')
}

// functionPlot draws the queued functions as parametric surfaces over
// the x/y ranges and overlays the dots.
type functionPlot struct {
	funcs []function
	dots  []dot
}

func (p functionPlot) compose(b *strings.Builder, r axes) {
	fmt.Fprintf(b, "set xrange %s\nset yrange %s\nset zrange %s\n", r.x, r.y, r.z)
	for i, f := range p.funcs {
		fmt.Fprintf(b, "f%d(x,y)=%s\n", i+1, f.expr)
	}
	b.WriteString("set samples 100\nset isosamples 301\nset hidden3d\nset parametric\n")
	fmt.Fprintf(b, "set urange %s\nset vrange %s\n", r.x, r.y)

	b.WriteString("splot ")
	for i, f := range p.funcs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "u, v, f%d(u,v) title %s", i+1, quote(f.title))
		if !f.plane {
			b.WriteString(" with pm3d")
		}
	}
	for _, d := range p.dots {
		fmt.Fprintf(b, ", '-' with points pt 7 lc rgb 'red' title %s", quote(d.title))
	}
	b.WriteByte('\n')
	for _, d := range p.dots {
		fmt.Fprintf(b, "%s %s %s\ne\n", formatFloat(d.coords[0]), formatFloat(d.coords[1]), formatFloat(d.coords[2]))
	}
	b.WriteString("unset parametric\n")
}

func blockName(i int) string {
	return fmt.Sprintf("$Datablock%d", i)
}

// figure selects what Show draws: functions win over point series.
// It returns nil if nothing is queued.
func (g *Gnuplot) figure() figure {
	switch {
	case len(g.funcs) > 0:
		return functionPlot{funcs: g.funcs, dots: g.dots}
	case len(g.series) > 0:
		return seriesPlot{dim: g.dim, series: g.series}
	}
	return nil
}

// Script returns the commands the next Show would send, or "" if
// nothing is queued.
func (g *Gnuplot) Script() string {
	fig := g.figure()
	if fig == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("set style fill transparent solid 0.5\n")
	for i, s := range g.series {
		fmt.Fprintf(&b, "%s << EOD\n%sEOD\n", blockName(i), s.data)
	}
	fig.compose(&b, g.ranges)
	return strings.TrimSuffix(b.String(), "\n")
}

// Show sends the queued series (or functions) as one script and, if
// reset is true and the send succeeded, calls Reset. Showing an empty
// session sends nothing.
func (g *Gnuplot) Show(reset bool) error {
	g.autoshow = false
	script := g.Script()
	if script == "" {
		return nil
	}
	if err := g.Send(script); err != nil {
		return err
	}
	if reset {
		g.Reset()
	}
	return nil
}

// Reset drops all queued series, functions and dots, reopens the x, y
// and z ranges and forgets the dimensionality. Points collected with
// AddPoint are kept; ClearPoints drops them.
func (g *Gnuplot) Reset() {
	g.series = nil
	g.funcs = nil
	g.dots = nil
	g.dim = Unset
	g.ranges = openAxes()
}

// Dimension reports whether the queued point series are 2D or 3D.
func (g *Gnuplot) Dimension() Dimension { return g.dim }
