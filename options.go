package gnuplot

import (
	"io"
	"time"

	"github.com/vdobler/gnuplot/logger"
)

// DefaultExecutable is the engine started when Options.Executable is empty.
const DefaultExecutable = "gnuplot"

// Options configures a session.
type Options struct {
	// Executable is the engine command line, split like a shell would
	// split it, e.g. "gnuplot" or "wsl gnuplot". Empty means
	// DefaultExecutable.
	Executable string

	// Persist appends --persist so plot windows outlive the program.
	Persist bool

	// Logger receives sent commands (debug) and swallowed failures (warn).
	// Nil discards everything.
	Logger *logger.Logger

	// Stdout and Stderr receive the engine's output. Nil discards it.
	Stdout, Stderr io.Writer

	// SettleDelay is waited after closing the pipe and before removing
	// temporary files, giving the engine time to finish its last plot.
	SettleDelay time.Duration

	// Encoding, if set, is sent as "set encoding ..." on startup.
	Encoding string

	// DecimalSign, if set, is sent as "set decimalsign '...'" on startup.
	DecimalSign string

	// InitCommands are sent verbatim right after startup.
	InitCommands []string

	// NoAutoshow disables the implicit Show on Close for sessions which
	// never called Show.
	NoAutoshow bool
}

// DefaultInitCommands are the startup commands of DefaultOptions.
var DefaultInitCommands = []string{
	"set minussign",
	"set size ratio 0.8",
	"set autoscale noextend",
	"set colorsequence classic",
}

// DefaultOptions returns the options of an interactive session: a
// persistent gnuplot process with UTF-8 encoding and a one second
// settle delay.
func DefaultOptions() Options {
	cmds := make([]string, len(DefaultInitCommands))
	copy(cmds, DefaultInitCommands)
	return Options{
		Executable:   DefaultExecutable,
		Persist:      true,
		SettleDelay:  time.Second,
		Encoding:     "utf8",
		InitCommands: cmds,
	}
}

// startup lists the commands sent when a session is created.
func (o Options) startup() []string {
	var cmds []string
	if o.Encoding != "" {
		cmds = append(cmds, "set encoding "+o.Encoding)
	}
	if o.DecimalSign != "" {
		cmds = append(cmds, "set decimalsign "+quote(o.DecimalSign))
	}
	return append(cmds, o.InitCommands...)
}
