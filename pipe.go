package gnuplot

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"

	"github.com/google/shlex"
	"github.com/hashicorp/go-multierror"

	"github.com/vdobler/gnuplot/logger"
)

// channel is the write-only command pipe to the engine. Nothing is ever
// read back from it.
type channel struct {
	w      *bufio.Writer
	closer io.Closer // stdin of cmd; nil for script channels
	cmd    *exec.Cmd
	log    *logger.Logger
	open   bool
	sent   uint64
}

// launch starts the engine described by opts. A failure is logged and
// yields a closed channel on which every send returns ErrNotOpen.
func launch(opts Options, log *logger.Logger) *channel {
	c := &channel{log: log}

	argv, err := shlex.Split(opts.Executable)
	if err != nil || len(argv) == 0 {
		log.Warn("cannot parse engine command %q: %v", opts.Executable, err)
		return c
	}
	if opts.Persist {
		argv = append(argv, "--persist")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Warn("creating pipe to %s: %v", argv[0], err)
		return c
	}
	if err := cmd.Start(); err != nil {
		log.Warn("starting %s: %v", argv[0], err)
		stdin.Close()
		return c
	}
	log.Debug("started %v (pid %d)", argv, cmd.Process.Pid)

	c.w = bufio.NewWriter(stdin)
	c.closer = stdin
	c.cmd = cmd
	c.open = true
	return c
}

// writerChannel sends commands to w instead of a process.
func writerChannel(w io.Writer, log *logger.Logger) *channel {
	return &channel{w: bufio.NewWriter(w), log: log, open: true}
}

// send writes text and a newline and flushes immediately.
func (c *channel) send(text string) error {
	if c == nil || !c.open {
		return ErrNotOpen
	}
	c.log.Debug("send %q", text)
	if _, err := c.w.WriteString(text); err != nil {
		return fmt.Errorf("gnuplot: writing command: %w", err)
	}
	if err := c.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("gnuplot: writing command: %w", err)
	}
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("gnuplot: flushing command: %w", err)
	}
	c.sent += uint64(len(text)) + 1
	return nil
}

// close closes stdin of the engine and waits for it to exit. It is safe
// to call close more than once.
func (c *channel) close() error {
	if c == nil || !c.open {
		return nil
	}
	c.open = false

	var err error
	if e := c.w.Flush(); e != nil {
		err = multierror.Append(err, fmt.Errorf("gnuplot: flushing pipe: %w", e))
	}
	if c.closer != nil {
		if e := c.closer.Close(); e != nil {
			err = multierror.Append(err, fmt.Errorf("gnuplot: closing pipe: %w", e))
		}
	}
	if c.cmd != nil {
		if e := c.cmd.Wait(); e != nil {
			err = multierror.Append(err, fmt.Errorf("gnuplot: engine exited: %w", e))
		}
	}
	return err
}
