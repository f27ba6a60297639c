// Package main provides gpipe, a command line front end which plots
// columns of a text table or xlsx sheet with gnuplot.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/gnuplot"
	"github.com/vdobler/gnuplot/internal/source"
	"github.com/vdobler/gnuplot/logger"
)

var (
	executable string
	sheet      string
	columns    string
	style      string
	title      string
	xlabel     string
	ylabel     string
	hist       int
	pngPath    string
	svgPath    string
	dumb       bool
	grid       bool
	dryRun     bool
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command and resets every flag to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gpipe [input]",
		Short: "Plot numeric columns with gnuplot",
		Long: `gpipe reads whitespace separated numeric columns from a file
(or stdin) or an .xlsx sheet and plots them with gnuplot.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&executable, "gnuplot", gnuplot.DefaultExecutable, "gnuplot command line")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Sheet of an .xlsx input (default: first sheet)")
	rootCmd.Flags().StringVarP(&columns, "columns", "c", "", "Columns to plot, e.g. 1:2 or time:load (default: 1:2, or 1 for a single column)")
	rootCmd.Flags().StringVarP(&style, "style", "s", "lines", "Line style: lines, points, linespoints, steps, boxes, dots, ...")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "Plot title")
	rootCmd.Flags().StringVar(&xlabel, "xlabel", "", "Label of the x axis")
	rootCmd.Flags().StringVar(&ylabel, "ylabel", "", "Label of the y axis")
	rootCmd.Flags().IntVar(&hist, "hist", 0, "Plot a histogram of the first selected column with this many bins")
	rootCmd.Flags().StringVar(&pngPath, "png", "", "Write a PNG file")
	rootCmd.Flags().StringVar(&svgPath, "svg", "", "Write an SVG file")
	rootCmd.Flags().BoolVar(&dumb, "dumb", false, "Draw text art on stdout")
	rootCmd.Flags().BoolVar(&grid, "grid", false, "Draw a grid")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the gnuplot script instead of running gnuplot")
	rootCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level: debug, info, warn, error")
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, level, "gpipe")

	table, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Debug("read %d rows in %d columns", table.Rows(), len(table.Columns))

	lineStyle, err := gnuplot.ParseLineStyle(style)
	if err != nil {
		return err
	}

	opts := gnuplot.DefaultOptions()
	opts.Executable = executable
	opts.Logger = log.WithPrefix("gnuplot")
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = os.Stderr

	var g *gnuplot.Gnuplot
	if dryRun {
		opts.SettleDelay = 0
		g = gnuplot.NewScript(cmd.OutOrStdout(), opts)
	} else {
		if pngPath != "" || svgPath != "" || dumb {
			// Nothing stays on screen, so there is nothing to persist.
			opts.Persist = false
			opts.SettleDelay = 0
		}
		g = gnuplot.New(opts)
	}

	if err := configure(g); err != nil {
		g.Close()
		return err
	}
	if err := addData(g, table, lineStyle); err != nil {
		g.Close()
		return err
	}
	if err := g.Show(true); err != nil {
		g.Close()
		return fmt.Errorf("sending plot: %w", err)
	}
	return g.Close()
}

func readInput(args []string, stdin io.Reader) (source.Table, error) {
	if len(args) == 0 || args[0] == "-" {
		return source.ReadText(stdin)
	}
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return source.Table{}, fmt.Errorf("file not found: %s", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return source.ReadXLSX(path, sheet)
	}
	f, err := os.Open(path)
	if err != nil {
		return source.Table{}, err
	}
	defer f.Close()
	return source.ReadText(f)
}

func configure(g *gnuplot.Gnuplot) error {
	switch {
	case pngPath != "":
		if err := g.SaveAsPNG(pngPath, 800, 600); err != nil {
			return err
		}
	case svgPath != "":
		if err := g.SaveAsSVG(svgPath, 800, 600); err != nil {
			return err
		}
	case dumb:
		if err := g.SaveAsDumb("", 0, 0, gnuplot.ANSI); err != nil {
			return err
		}
	}
	if title != "" {
		if err := g.SetTitle(title); err != nil {
			return err
		}
	}
	if xlabel != "" {
		if err := g.SetXLabel(xlabel); err != nil {
			return err
		}
	}
	if ylabel != "" {
		if err := g.SetYLabel(ylabel); err != nil {
			return err
		}
	}
	if grid {
		return g.SetGrid()
	}
	return nil
}

func addData(g *gnuplot.Gnuplot, table source.Table, lineStyle gnuplot.LineStyle) error {
	specs := columnSpecs(columns, len(table.Columns))
	cols := make([][]float64, len(specs))
	for i, spec := range specs {
		col, err := table.Column(spec)
		if err != nil {
			return err
		}
		cols[i] = col
	}

	name := seriesName(table, specs)

	if hist > 0 {
		return g.Histogram(cols[0], hist, name, gnuplot.Boxes)
	}
	switch len(cols) {
	case 1:
		return g.Plot(cols[0], name, lineStyle)
	case 2:
		return g.PlotXY(cols[0], cols[1], name, lineStyle)
	case 3:
		return g.Plot3D(cols[0], cols[1], cols[2], name, lineStyle)
	}
	return fmt.Errorf("cannot plot %d columns", len(cols))
}

// seriesName titles the series after its last column, using the header
// if there is one.
func seriesName(table source.Table, specs []string) string {
	last := specs[len(specs)-1]
	if n, err := strconv.Atoi(last); err == nil && n >= 1 && n <= len(table.Names) {
		return table.Names[n-1]
	}
	return last
}

// columnSpecs splits a "1:2" style flag; an empty flag selects the first
// one or two columns.
func columnSpecs(flag string, available int) []string {
	if flag != "" {
		return strings.Split(flag, ":")
	}
	if available == 1 {
		return []string{"1"}
	}
	return []string{"1", "2"}
}
