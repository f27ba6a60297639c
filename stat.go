package gnuplot

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// BinCount is one histogram bin.
type BinCount struct {
	Center float64
	Count  int
}

// Bin partitions [min(values), max(values)] into nbins bins of equal width
// and counts the values falling into each. The maximum lands in the last
// bin. If all values are equal a single bin centered on that value holds
// every sample. Empty values produce no bins.
func Bin(values []float64, nbins int) ([]BinCount, error) {
	if nbins <= 0 {
		return nil, ErrInvalidBins
	}
	if len(values) == 0 {
		return nil, nil
	}

	min, max := plotter.Range(plotter.Values(values))
	if min == max {
		return []BinCount{{Center: min, Count: len(values)}}, nil
	}

	// frac maps [min, max] onto [0, 1] without forming a bin width, which
	// may overflow or underflow to zero for extreme ranges.
	frac := func(x float64) float64 { return (x - min) / (max - min) }
	if math.IsInf(max-min, 0) {
		span := max/2 - min/2
		frac = func(x float64) float64 { return (x/2 - min/2) / span }
	}

	x2bin := func(x float64) int {
		if x >= max {
			return nbins - 1
		}
		f := math.Floor(frac(x) * float64(nbins))
		switch {
		case !(f >= 0):
			return 0
		case f >= float64(nbins):
			return nbins - 1
		}
		return int(f)
	}
	bin2x := func(b int) float64 {
		t := (float64(b) + 0.5) / float64(nbins)
		return min*(1-t) + max*t
	}

	counts := make([]int, nbins)
	for _, v := range values {
		counts[x2bin(v)]++
	}

	bins := make([]BinCount, nbins)
	for b, count := range counts {
		bins[b] = BinCount{Center: bin2x(b), Count: count}
	}
	return bins, nil
}

// Histogram bins values into nbins bins and queues the bin counts as a
// 2D series drawn with style (typically Boxes).
func (g *Gnuplot) Histogram(values []float64, nbins int, title string, style LineStyle) error {
	bins, err := Bin(values, nbins)
	if err != nil || len(bins) == 0 {
		return err
	}
	x := make([]float64, len(bins))
	y := make([]float64, len(bins))
	for i, b := range bins {
		x[i], y[i] = b.Center, float64(b.Count)
	}
	return g.addSeries(title, style, TwoD, x, y)
}
