// Package gnuplot drives an external gnuplot process from Go.
//
// Nothing is rendered here. A session formats data and settings as
// gnuplot commands and writes them, one way, to the stdin of a long
// running gnuplot process. Gnuplot's answers are never read.
//
// # Sessions
//
// A session is created with New, which starts the engine, or with
// NewScript, which writes the commands to any io.Writer:
//
//	g := gnuplot.New(gnuplot.DefaultOptions())
//	defer g.Close()
//	g.SetTitle("Measurements")
//	g.PlotXY(x, y, "raw", gnuplot.Points)
//	g.Histogram(samples, 20, "distribution", gnuplot.Boxes)
//	g.Show(true)
//
// If gnuplot cannot be started the session still works but every Send
// (and therefore Show and all setters) returns ErrNotOpen.
//
// # Series and Data Blocks
//
// Every Plot call encodes its columns into an inline data block named
// $Datablock0, $Datablock1, ... and remembers which columns to use.
// Show sends all blocks followed by a single plot (2D) or splot (3D)
// statement. All series of one plot must have the same dimensionality;
// mixing returns a *DimensionError. Columns of unequal length return a
// *LengthError.
//
// # Function Plots
//
// Plot3DFunc queues a surface given as a gnuplot expression in x and y.
// As soon as one function is queued Show draws the functions (and the
// dots queued by PlotDot) as parametric surfaces over the x and y ranges
// instead of the point series.
//
// # Collecting Points
//
// AddPoint and its error bar variants collect samples one by one;
// PlotPoints and friends turn them into a series.
//
// # Closing
//
// Close shows pending content if Show was never called, closes the pipe,
// waits Options.SettleDelay and deletes files registered with
// RegisterTempFile.
package gnuplot
