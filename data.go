package gnuplot

import (
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// EncodeColumns zips equal-length columns into a gnuplot data block:
// one line per index, the column values separated by a single space.
// The returned using spec names the columns 1:2:...:N in argument order.
//
// An empty first column yields an empty block and no error; callers skip
// such series.
func EncodeColumns(cols ...[]float64) (block, using string, err error) {
	if len(cols) == 0 {
		return "", "", ErrNoColumns
	}
	n := len(cols[0])
	for i, c := range cols[1:] {
		if len(c) != n {
			return "", "", &LengthError{Column: i + 1, Len: len(c), Want: n}
		}
	}
	if n == 0 {
		return "", "", nil
	}

	var b strings.Builder
	for row := 0; row < n; row++ {
		for j, c := range cols {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatFloat(c[row]))
		}
		b.WriteByte('\n')
	}
	return b.String(), usingSpec(len(cols)), nil
}

// usingSpec returns "1:2:...:n".
func usingSpec(n int) string {
	idx := make([]string, n)
	for i := range idx {
		idx[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(idx, ":")
}

// valuesOf copies a gonum Valuer into a plain column.
func valuesOf(v plotter.Valuer) []float64 {
	col := make([]float64, v.Len())
	for i := range col {
		col[i] = v.Value(i)
	}
	return col
}

// xysOf splits a gonum XYer into an x and a y column.
func xysOf(xy plotter.XYer) (x, y []float64) {
	n := xy.Len()
	x, y = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		x[i], y[i] = xy.XY(i)
	}
	return x, y
}
