package gnuplot

import (
	"errors"
	"strings"
	"testing"
)

func TestAddPoint(t *testing.T) {
	g := NewScript(discard{}, Options{})
	g.AddPoint(0.5, 1)
	g.AddValue(7) // x = 1
	g.AddValue(8) // x = 2

	n, err := g.NumPoints()
	if n != 3 || err != nil {
		t.Fatalf("Got %d points, %v", n, err)
	}
	x, y := g.PointsX(), g.PointsY()
	if x[0] != 0.5 || x[1] != 1 || x[2] != 2 || y[2] != 8 {
		t.Errorf("Got x=%v y=%v", x, y)
	}

	if err := g.PlotPoints("collected", LinesPoints); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !strings.Contains(g.Script(), "0.5 1\n1 7\n2 8\n") {
		t.Errorf("Got %q", g.Script())
	}
}

func TestAddPointConsistency(t *testing.T) {
	g := NewScript(discard{}, Options{})
	if err := g.AddPointXErr(1, 2, 0.1); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	// The lists are consistent before this call, so it is accepted and
	// leaves 2 x values but only 1 x error behind.
	if err := g.AddPoint(3, 4); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	for i, add := range []func() error{
		func() error { return g.AddPoint(5, 6) },
		func() error { return g.AddValue(6) },
		func() error { return g.AddPointXErr(5, 6, 0.1) },
		func() error { return g.AddPointYErr(5, 6, 0.1) },
		func() error { return g.AddPointXYErr(5, 6, 0.1, 0.1) },
		func() error { return g.PlotPoints("", Lines) },
		func() error { return g.PlotPointsXErr("") },
	} {
		if err := add(); !errors.Is(err, ErrInconsistentPoints) {
			t.Errorf("%d: got %v", i, err)
		}
	}
	if n, err := g.NumPoints(); n != 2 || !errors.Is(err, ErrInconsistentPoints) {
		t.Errorf("Got %d, %v", n, err)
	}
}

func TestClearPoints(t *testing.T) {
	g := NewScript(discard{}, Options{})
	g.AddPointXErr(1, 2, 0.1)
	g.AddPoint(3, 4)
	if err := g.AddPoint(5, 6); !errors.Is(err, ErrInconsistentPoints) {
		t.Fatalf("Got %v", err)
	}

	g.Reset()
	if _, err := g.NumPoints(); !errors.Is(err, ErrInconsistentPoints) {
		t.Errorf("Reset repaired the points: %v", err)
	}

	g.ClearPoints()
	if n, err := g.NumPoints(); n != 0 || err != nil {
		t.Fatalf("Got %d, %v", n, err)
	}
	if err := g.AddPoint(5, 6); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
	if err := g.PlotPoints("fresh", Points); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
	if !strings.Contains(g.Script(), "$Datablock0 << EOD\n5 6\nEOD") {
		t.Errorf("Got %q", g.Script())
	}
}

func TestAddPointYErrConsistency(t *testing.T) {
	g := NewScript(discard{}, Options{})
	g.AddPoint(1, 1)
	if err := g.AddPointYErr(2, 2, 0.5); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	// 2 points, 1 y error.
	if err := g.AddPointYErr(3, 3, 0.5); !errors.Is(err, ErrInconsistentPoints) {
		t.Errorf("Got %v", err)
	}
}

func TestPlotPointsWithErrors(t *testing.T) {
	g := NewScript(discard{}, Options{})
	g.AddPointXYErr(1, 2, 0.1, 0.2)
	g.AddPointXYErr(2, 3, 0.3, 0.4)

	if err := g.PlotPointsXErr("xe"); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
	if err := g.PlotPointsYErr("ye"); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
	if err := g.PlotPointsXYErr("xye"); err != nil {
		t.Errorf("Unexpected error %v", err)
	}

	script := g.Script()
	for _, want := range []string{
		"$Datablock0 << EOD\n1 2 0.1\n2 3 0.3\nEOD",
		"$Datablock1 << EOD\n1 2 0.2\n2 3 0.4\nEOD",
		"$Datablock2 << EOD\n1 2 0.1 0.2\n2 3 0.3 0.4\nEOD",
		"with xyerrorbars title 'xye'",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("Missing %q in\n%s", want, script)
		}
	}
}

func TestPlotPointsMissingErrors(t *testing.T) {
	g := NewScript(discard{}, Options{})
	g.AddPoint(1, 2)
	if err := g.PlotPointsYErr(""); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Got %v", err)
	}
}
