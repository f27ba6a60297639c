package gnuplot

import "fmt"

// pointLists collects samples one at a time. x and y always have the
// same length; xerr and yerr are either empty or as long as x.
type pointLists struct {
	x, y       []float64
	xerr, yerr []float64
}

func (p *pointLists) check() error {
	if len(p.x) != len(p.y) {
		return fmt.Errorf("%w: %d x values but %d y values", ErrInconsistentPoints, len(p.x), len(p.y))
	}
	if len(p.xerr) > 0 && len(p.xerr) != len(p.x) {
		return fmt.Errorf("%w: %d x errors for %d points", ErrInconsistentPoints, len(p.xerr), len(p.x))
	}
	if len(p.yerr) > 0 && len(p.yerr) != len(p.y) {
		return fmt.Errorf("%w: %d y errors for %d points", ErrInconsistentPoints, len(p.yerr), len(p.y))
	}
	return nil
}

// AddPoint appends the sample (x, y). Like all AddPoint variants it first
// checks the collected lists and refuses to append to inconsistent ones.
func (g *Gnuplot) AddPoint(x, y float64) error {
	if err := g.points.check(); err != nil {
		return err
	}
	g.points.x = append(g.points.x, x)
	g.points.y = append(g.points.y, y)
	return nil
}

// AddValue appends y using the number of points collected so far as x.
func (g *Gnuplot) AddValue(y float64) error {
	return g.AddPoint(float64(len(g.points.x)), y)
}

// AddPointXErr appends (x, y) with a horizontal error.
func (g *Gnuplot) AddPointXErr(x, y, xerr float64) error {
	if err := g.points.check(); err != nil {
		return err
	}
	g.points.x = append(g.points.x, x)
	g.points.y = append(g.points.y, y)
	g.points.xerr = append(g.points.xerr, xerr)
	return nil
}

// AddPointYErr appends (x, y) with a vertical error.
func (g *Gnuplot) AddPointYErr(x, y, yerr float64) error {
	if err := g.points.check(); err != nil {
		return err
	}
	g.points.x = append(g.points.x, x)
	g.points.y = append(g.points.y, y)
	g.points.yerr = append(g.points.yerr, yerr)
	return nil
}

// AddPointXYErr appends (x, y) with horizontal and vertical errors.
func (g *Gnuplot) AddPointXYErr(x, y, xerr, yerr float64) error {
	if err := g.points.check(); err != nil {
		return err
	}
	g.points.x = append(g.points.x, x)
	g.points.y = append(g.points.y, y)
	g.points.xerr = append(g.points.xerr, xerr)
	g.points.yerr = append(g.points.yerr, yerr)
	return nil
}

// NumPoints returns the number of collected points.
func (g *Gnuplot) NumPoints() (int, error) {
	return len(g.points.x), g.points.check()
}

// ClearPoints drops all collected points and their errors. It is the
// way out of an inconsistent accumulator.
func (g *Gnuplot) ClearPoints() {
	g.points = pointLists{}
}

// PointsX returns the collected abscissas.
func (g *Gnuplot) PointsX() []float64 { return g.points.x }

// PointsY returns the collected ordinates.
func (g *Gnuplot) PointsY() []float64 { return g.points.y }

// PlotPoints queues the collected points as a series.
func (g *Gnuplot) PlotPoints(title string, style LineStyle) error {
	if err := g.points.check(); err != nil {
		return err
	}
	return g.PlotXY(g.points.x, g.points.y, title, style)
}

// PlotPointsXErr queues the collected points with their x errors.
func (g *Gnuplot) PlotPointsXErr(title string) error {
	if err := g.points.check(); err != nil {
		return err
	}
	return g.PlotXErr(g.points.x, g.points.y, g.points.xerr, title)
}

// PlotPointsYErr queues the collected points with their y errors.
func (g *Gnuplot) PlotPointsYErr(title string) error {
	if err := g.points.check(); err != nil {
		return err
	}
	return g.PlotYErr(g.points.x, g.points.y, g.points.yerr, title)
}

// PlotPointsXYErr queues the collected points with both errors.
func (g *Gnuplot) PlotPointsXYErr(title string) error {
	if err := g.points.check(); err != nil {
		return err
	}
	return g.PlotXYErr(g.points.x, g.points.y, g.points.xerr, g.points.yerr, title)
}
