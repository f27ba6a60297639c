package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/vdobler/gnuplot/internal/source"
)

// execute runs gpipe with args on stdin and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const table3 = `# time load temp
time load temp
1 2 10
2 4 20
3 9 30
`

func TestDryRun(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  []string
	}{
		{
			name:  "default columns",
			stdin: "1 2\n2 4\n3 9\n",
			args:  []string{"--dry-run"},
			want: []string{
				"set encoding utf8\n",
				"set minussign\n",
				"$Datablock0 << EOD\n1 2\n2 4\n3 9\nEOD\n",
				"plot [] [] $Datablock0 using 1:2 with lines title '2'\n",
			},
		},
		{
			name:  "single column",
			stdin: "5\n6\n",
			args:  []string{"--dry-run", "--style", "points"},
			want: []string{
				"$Datablock0 << EOD\n5\n6\nEOD\n",
				"using 1 with points title '1'",
			},
		},
		{
			name:  "named columns",
			stdin: table3,
			args:  []string{"--dry-run", "-c", "time:temp", "-s", "linespoints"},
			want: []string{
				"$Datablock0 << EOD\n1 10\n2 20\n3 30\nEOD\n",
				"using 1:2 with linespoints title 'temp'",
			},
		},
		{
			name:  "surface",
			stdin: table3,
			args:  []string{"--dry-run", "--columns", "1:2:3"},
			want: []string{
				"$Datablock0 << EOD\n1 2 10\n2 4 20\n3 9 30\nEOD\n",
				"set dgrid3d 40,40\n",
				"splot [] [] [] $Datablock0 using 1:2:3 with lines title 'temp'\n",
			},
		},
		{
			name:  "histogram",
			stdin: "1\n2\n3\n",
			args:  []string{"--dry-run", "--hist", "2"},
			want: []string{
				"$Datablock0 << EOD\n1.5 1\n2.5 2\nEOD\n",
				"with boxes title '1'",
			},
		},
		{
			name:  "settings and output",
			stdin: "1 2\n2 4\n",
			args: []string{"--dry-run", "--png", "out.png", "--title", "it's",
				"--xlabel", "x", "--ylabel", "y", "--grid"},
			want: []string{
				"set terminal pngcairo color enhanced size 800,600\nset output 'out.png'\n",
				"set title 'it''s'\n",
				"set xlabel 'x'\nset ylabel 'y'\nset grid\n",
			},
		},
		{
			name:  "svg",
			stdin: "1 2\n2 4\n",
			args:  []string{"--dry-run", "--svg", "out.svg"},
			want:  []string{"set terminal svg enhanced mouse standalone size 800,600\nset output 'out.svg'\n"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.stdin, tc.args...)
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("Missing %q in\n%s", w, got)
				}
			}
		})
	}
}

func TestDryRunFlagsReset(t *testing.T) {
	if _, err := execute(t, "1 2\n", "--dry-run", "--grid", "--title", "first"); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	got, err := execute(t, "1 2\n", "--dry-run")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if strings.Contains(got, "set grid") || strings.Contains(got, "set title") {
		t.Errorf("Flags of an earlier run leaked:\n%s", got)
	}
}

func TestDryRunFiles(t *testing.T) {
	dir := t.TempDir()

	textFile := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(textFile, []byte("1,4\n2,5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := execute(t, "", "--dry-run", textFile)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !strings.Contains(got, "$Datablock0 << EOD\n1 4\n2 5\nEOD\n") {
		t.Errorf("Got\n%s", got)
	}

	f := excelize.NewFile()
	defer f.Close()
	idx, err := f.NewSheet("load")
	if err != nil {
		t.Fatal(err)
	}
	f.SetActiveSheet(idx)
	f.SetCellValue("load", "A1", "t")
	f.SetCellValue("load", "B1", "cpu")
	f.SetCellValue("load", "A2", 1)
	f.SetCellValue("load", "B2", 0.5)
	f.SetCellValue("load", "A3", 2)
	f.SetCellValue("load", "B3", 0.75)
	workbook := filepath.Join(dir, "data.xlsx")
	if err := f.SaveAs(workbook); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}

	got, err = execute(t, "", "--dry-run", "--sheet", "load", "-c", "t:cpu", workbook)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	for _, w := range []string{
		"$Datablock0 << EOD\n1 0.5\n2 0.75\nEOD\n",
		"using 1:2 with lines title 'cpu'",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("Missing %q in\n%s", w, got)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"missing file", "", []string{"--dry-run", "no/such/file.txt"}, "file not found"},
		{"empty input", "", []string{"--dry-run"}, "no numeric data"},
		{"bad style", "1 2\n", []string{"--dry-run", "-s", "sparkles"}, "unknown line style"},
		{"bad log level", "1 2\n", []string{"--dry-run", "--log", "loud"}, "unknown log level"},
		{"column out of range", "1 2\n", []string{"--dry-run", "-c", "1:5"}, "out of range"},
		{"unknown column", table3, []string{"--dry-run", "-c", "time:rain"}, `no column "rain"`},
		{"too many columns", "1 2 3 4\n", []string{"--dry-run", "-c", "1:2:3:4"}, "cannot plot 4 columns"},
		{"too many args", "", []string{"a", "b"}, "accepts at most 1 arg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			if err == nil {
				t.Fatalf("Missing error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Got %q, want %q", err, tc.want)
			}
		})
	}
}

func TestRunWithoutEngine(t *testing.T) {
	_, err := execute(t, "1 2\n2 4\n", "--gnuplot", "/no/such/gnuplot-binary", "--png", "x.png")
	if err == nil || !strings.Contains(err.Error(), "not open") {
		t.Errorf("Got %v", err)
	}
}

func TestColumnSpecs(t *testing.T) {
	tests := []struct {
		flag      string
		available int
		want      []string
	}{
		{"", 1, []string{"1"}},
		{"", 4, []string{"1", "2"}},
		{"2:3", 4, []string{"2", "3"}},
		{"time:load:temp", 3, []string{"time", "load", "temp"}},
	}
	for i, tc := range tests {
		got := columnSpecs(tc.flag, tc.available)
		if len(got) != len(tc.want) {
			t.Errorf("%d: got %v want %v", i, got, tc.want)
			continue
		}
		for j := range got {
			if got[j] != tc.want[j] {
				t.Errorf("%d: got %v want %v", i, got, tc.want)
			}
		}
	}
}

func TestSeriesName(t *testing.T) {
	table := source.Table{Names: []string{"time", "load"}}
	if got := seriesName(table, []string{"1", "2"}); got != "load" {
		t.Errorf("Got %q", got)
	}
	if got := seriesName(table, []string{"time", "load"}); got != "load" {
		t.Errorf("Got %q", got)
	}
	if got := seriesName(source.Table{}, []string{"1", "3"}); got != "3" {
		t.Errorf("Got %q", got)
	}
}
