// Package source reads numeric columns from text tables and xlsx sheets.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoData indicates an input without a single numeric row.
var ErrNoData = errors.New("no numeric data")

// Table is a set of equal-length numeric columns.
type Table struct {
	Names   []string // optional header, one per column
	Columns [][]float64
}

// Rows returns the number of rows of t.
func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Column returns the column named name or with the 1-based index given
// as a decimal string.
func (t Table) Column(spec string) ([]float64, error) {
	if n, err := strconv.Atoi(spec); err == nil {
		if n < 1 || n > len(t.Columns) {
			return nil, fmt.Errorf("column %d out of range [1,%d]", n, len(t.Columns))
		}
		return t.Columns[n-1], nil
	}
	for i, name := range t.Names {
		if name == spec {
			return t.Columns[i], nil
		}
	}
	return nil, fmt.Errorf("no column %q", spec)
}

// ReadText reads whitespace (or comma) separated columns. Blank lines and
// lines starting with # are skipped. A first line which does not parse
// as numbers is taken as header.
func ReadText(r io.Reader) (Table, error) {
	var records [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		}))
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("reading table: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads the numeric columns of sheet in the workbook at path.
// An empty sheet name selects the first sheet.
func ReadXLSX(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (Table, error) {
	var t Table
	if len(records) == 0 {
		return t, ErrNoData
	}
	if _, ok := parseRow(records[0]); !ok {
		t.Names = records[0]
		records = records[1:]
	}

	width := -1
	for i, rec := range records {
		vals, ok := parseRow(rec)
		if !ok {
			return Table{}, fmt.Errorf("row %d: not numeric: %q", i+1, rec)
		}
		if width == -1 {
			width = len(vals)
			t.Columns = make([][]float64, width)
		} else if len(vals) != width {
			return Table{}, fmt.Errorf("row %d: got %d values, want %d", i+1, len(vals), width)
		}
		for j, v := range vals {
			t.Columns[j] = append(t.Columns[j], v)
		}
	}
	if width <= 0 {
		return Table{}, ErrNoData
	}
	return t, nil
}

func parseRow(rec []string) ([]float64, bool) {
	if len(rec) == 0 {
		return nil, false
	}
	vals := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}
