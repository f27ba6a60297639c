package gnuplot

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"

	"github.com/vdobler/gnuplot/logger"
)

// Gnuplot is a plot session: it owns one engine process, collects series
// and sends the composed script on Show.
//
// A Gnuplot is not safe for concurrent use.
type Gnuplot struct {
	opts Options
	log  *logger.Logger
	pipe *channel

	tempFiles pathSet
	ranges    axes

	// Point based series and the dimensionality fixed by the first one.
	series []series
	dim    Dimension

	// Function plot content.
	funcs []function
	dots  []dot

	points pointLists

	autoshow bool
	closed   bool
}

// New starts the engine and sends the startup commands of opts. A failed
// start is not reported here: every later Send returns ErrNotOpen.
func New(opts Options) *Gnuplot {
	if opts.Executable == "" {
		opts.Executable = DefaultExecutable
	}
	g := newSession(opts)
	g.pipe = launch(g.opts, g.log)
	g.init()
	return g
}

// NewScript returns a session which writes its script to w instead of
// starting an engine. Closing the session does not close w.
func NewScript(w io.Writer, opts Options) *Gnuplot {
	g := newSession(opts)
	g.pipe = writerChannel(w, g.log)
	g.init()
	return g
}

func newSession(opts Options) *Gnuplot {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Gnuplot{
		opts:      opts,
		log:       log,
		tempFiles: make(pathSet),
		ranges:    openAxes(),
		autoshow:  !opts.NoAutoshow,
	}
}

func (g *Gnuplot) init() {
	for _, cmd := range g.opts.startup() {
		if err := g.Send(cmd); err != nil {
			return
		}
	}
}

// Send writes one command (which may span several lines) to the engine.
// It returns ErrNotOpen if the engine is not running.
func (g *Gnuplot) Send(cmd string) error {
	err := g.pipe.send(cmd)
	if err != nil && !errors.Is(err, ErrNotOpen) {
		g.log.Warn("%v", err)
	}
	return err
}

// Sendf is Send with fmt.Sprintf formatting.
func (g *Gnuplot) Sendf(format string, args ...any) error {
	return g.Send(fmt.Sprintf(format, args...))
}

// Close tears the session down: pending content is shown if Show was
// never called, the pipe is closed, Options.SettleDelay is waited and
// registered temporary files are removed. Close is idempotent.
func (g *Gnuplot) Close() error {
	if g.closed {
		return nil
	}

	var err error
	if g.autoshow && g.figure() != nil {
		if e := g.Show(false); e != nil && !errors.Is(e, ErrNotOpen) {
			err = multierror.Append(err, e)
		}
	}
	g.closed = true

	if e := g.pipe.close(); e != nil {
		err = multierror.Append(err, e)
	}
	g.log.Debug("closed engine pipe after %s of script", humanize.Bytes(g.pipe.sent))

	if g.opts.SettleDelay > 0 {
		time.Sleep(g.opts.SettleDelay)
	}
	if len(g.tempFiles) > 0 {
		g.log.Debug("removing %d temporary files", len(g.tempFiles))
		if e := g.tempFiles.RemoveAll(); e != nil {
			err = multierror.Append(err, e)
		}
	}
	return err
}

// RegisterTempFile schedules path for deletion when the session is closed.
func (g *Gnuplot) RegisterTempFile(path string) {
	g.tempFiles.Add(path)
}

// TempFiles returns the files which will be removed on Close.
func (g *Gnuplot) TempFiles() []string {
	return g.tempFiles.Elements()
}

// -------------------------------------------------------------------------
// Plot properties

// SetTitle sets the plot title.
func (g *Gnuplot) SetTitle(title string) error {
	return g.Send("set title " + quote(title))
}

// SetXLabel sets the label of the x axis.
func (g *Gnuplot) SetXLabel(label string) error {
	return g.Send("set xlabel " + quote(label))
}

// SetYLabel sets the label of the y axis.
func (g *Gnuplot) SetYLabel(label string) error {
	return g.Send("set ylabel " + quote(label))
}

// SetZLabel sets the label of the z axis.
func (g *Gnuplot) SetZLabel(label string) error {
	return g.Send("set zlabel " + quote(label))
}

// SetGrid turns the grid on.
func (g *Gnuplot) SetGrid() error {
	return g.Send("set grid")
}

// SetLogScale switches the x, y or both axes to logarithmic scale.
// Linear turns all logarithmic scales off.
func (g *Gnuplot) SetLogScale(scale AxisScale) error {
	return g.Send(scale.command())
}

// Multiplot asks gnuplot to lay the following plots out on a grid of
// rows by cols panels.
func (g *Gnuplot) Multiplot(rows, cols int, title string) error {
	return g.Sendf("set multiplot layout %d, %d title %s", rows, cols, quote(title))
}
