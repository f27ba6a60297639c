package gnuplot

import (
	"errors"
	"fmt"
)

// ErrNotOpen is returned by every send on a session whose engine could not
// be started or which has already been closed.
var ErrNotOpen = errors.New("gnuplot: command channel not open")

// ErrLengthMismatch indicates parallel data columns of different length.
var ErrLengthMismatch = errors.New("gnuplot: columns differ in length")

// ErrDimensionMismatch indicates an attempt to mix 2D and 3D series.
var ErrDimensionMismatch = errors.New("gnuplot: cannot mix 2D and 3D series")

// ErrInvalidBins is returned for a histogram with a non-positive bin count.
var ErrInvalidBins = errors.New("gnuplot: number of bins must be positive")

// ErrInconsistentPoints indicates that the accumulated point lists are
// out of step, e.g. after mixing AddPointXErr and AddPoint.
var ErrInconsistentPoints = errors.New("gnuplot: accumulated points are inconsistent")

// ErrNoColumns is returned when encoding zero columns.
var ErrNoColumns = errors.New("gnuplot: no columns")

// ErrBadPoint is returned for a dot which is neither 2D nor 3D.
var ErrBadPoint = errors.New("gnuplot: point needs 2 or 3 coordinates")

// LengthError reports which column broke the equal-length rule.
type LengthError struct {
	Column int // 0-based index of the offending column
	Len    int
	Want   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("gnuplot: column %d has %d values, want %d", e.Column+1, e.Len, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// DimensionError reports a series whose dimensionality differs from the
// series already queued in the session.
type DimensionError struct {
	Session Dimension
	Series  Dimension
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("gnuplot: cannot add %s series to %s plot", e.Series, e.Session)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }
