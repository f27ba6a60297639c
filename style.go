package gnuplot

import (
	"fmt"
	"strings"
)

// -------------------------------------------------------------------------
// Line styles

// LineStyle selects how gnuplot draws a series.
type LineStyle int

const (
	Lines LineStyle = iota
	Dots
	Points
	LinesPoints
	Steps
	Boxes
	XErrorBars
	YErrorBars
	XYErrorBars
	Vectors
	PM3D
)

var lineStyleKeywords = [...]string{
	Lines:       "lines",
	Dots:        "dots",
	Points:      "points",
	LinesPoints: "linespoints",
	Steps:       "steps",
	Boxes:       "boxes",
	XErrorBars:  "xerrorbars",
	YErrorBars:  "yerrorbars",
	XYErrorBars: "xyerrorbars",
	Vectors:     "vectors",
	PM3D:        "pm3d",
}

// String returns the gnuplot keyword used after "with". Unknown styles
// fall back to "lines".
func (s LineStyle) String() string {
	if s < 0 || int(s) >= len(lineStyleKeywords) {
		return "lines"
	}
	return lineStyleKeywords[s]
}

// ParseLineStyle is the inverse of LineStyle.String. It also accepts a
// few common aliases.
func ParseLineStyle(s string) (LineStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, kw := range lineStyleKeywords {
		if s == kw {
			return LineStyle(i), nil
		}
	}
	switch s {
	case "line", "":
		return Lines, nil
	case "point":
		return Points, nil
	case "box", "histogram":
		return Boxes, nil
	case "surface", "colormap":
		return PM3D, nil
	}
	return Lines, fmt.Errorf("gnuplot: unknown line style %q", s)
}

// -------------------------------------------------------------------------
// Axis scales

// AxisScale selects linear or logarithmic axes.
type AxisScale int

const (
	Linear AxisScale = iota
	LogX
	LogY
	LogXY
)

func (a AxisScale) command() string {
	switch a {
	case LogX:
		return "set logscale x"
	case LogY:
		return "set logscale y"
	case LogXY:
		return "set logscale xy"
	default:
		return "unset logscale"
	}
}

// -------------------------------------------------------------------------
// Dumb terminal color modes

// TerminalMode is the color mode of the text-art "dumb" terminal.
type TerminalMode int

const (
	Mono TerminalMode = iota
	ANSI
	ANSI256
	ANSIRGB
)

func (m TerminalMode) String() string {
	switch m {
	case ANSI:
		return "ansi"
	case ANSI256:
		return "ansi256"
	case ANSIRGB:
		return "ansirgb"
	default:
		return "mono"
	}
}

// -------------------------------------------------------------------------
// Dimensionality

// Dimension records whether a session plots 2D or 3D point series.
type Dimension int

const (
	Unset Dimension = iota
	TwoD
	ThreeD
)

func (d Dimension) String() string {
	switch d {
	case TwoD:
		return "2D"
	case ThreeD:
		return "3D"
	default:
		return "unset"
	}
}

// escapeQuotes doubles single quotes so s can be placed inside a
// single-quoted gnuplot string.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// quote returns s as a single-quoted gnuplot string.
func quote(s string) string {
	return "'" + escapeQuotes(s) + "'"
}
