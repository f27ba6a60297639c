package gnuplot

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
	"gonum.org/v1/plot/vg"
)

// Fallback size of the dumb terminal when stdout is not a terminal.
const (
	DumbWidth  = 80
	DumbHeight = 50
)

// SaveAsPNG directs the following plots to a PNG file of width x height
// pixels.
func (g *Gnuplot) SaveAsPNG(filename string, width, height int) error {
	return g.Sendf("set terminal pngcairo color enhanced size %d,%d\nset output %s",
		width, height, quote(filename))
}

// SaveAsPDF directs the following plots to a PDF file of the given
// physical size, e.g. 16*vg.Centimeter by 12*vg.Centimeter.
func (g *Gnuplot) SaveAsPDF(filename string, width, height vg.Length) error {
	return g.Sendf("set terminal pdfcairo color enhanced size %scm,%scm\nset output %s",
		centimeters(width), centimeters(height), quote(filename))
}

// SaveAsSVG directs the following plots to a standalone, mouse enabled
// SVG file of width x height pixels.
func (g *Gnuplot) SaveAsSVG(filename string, width, height int) error {
	return g.Sendf("set terminal svg enhanced mouse standalone size %d,%d\nset output %s",
		width, height, quote(filename))
}

// SaveAsDumb switches to gnuplot's text-art terminal of width x height
// characters. A non-positive size is taken from the terminal attached to
// stdout, or DumbWidth x DumbHeight if there is none. An empty filename
// leaves the output on gnuplot's stdout.
func (g *Gnuplot) SaveAsDumb(filename string, width, height int, mode TerminalMode) error {
	if width <= 0 || height <= 0 {
		w, h := terminalSize()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}
	cmd := fmt.Sprintf("set terminal dumb size %d %d %s", width, height, mode)
	if filename != "" {
		cmd += "\nset output " + quote(filename)
	}
	return g.Send(cmd)
}

func terminalSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DumbWidth, DumbHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DumbWidth, DumbHeight
	}
	return w, h
}

func centimeters(l vg.Length) string {
	return formatFloat(math.Round(float64(l/vg.Centimeter)*1e4) / 1e4)
}
