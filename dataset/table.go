// Package dataset holds the in-memory table and frame types shared by the
// pipeline stages, plus CSV loading and submission writing.
package dataset

import (
	"fmt"
	"strconv"
)

// Table is a raw tabular dataset: a header plus string cells, exactly as read
// from CSV. Parsing into numbers happens at the point of use.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table from a header and rows. Row widths must match the
// header.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("dataset: row %d has %d cells, header has %d", i, len(r), len(columns))
		}
	}
	t := &Table{Columns: columns, Rows: rows}
	t.reindex()
	return t, nil
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		t.index[c] = i
	}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column's cells in row order.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, MissingColumnError{Column: name}
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Floats returns the named column parsed as float64.
func (t *Table) Floats(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for r, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: column %q row %d: %w", name, r, err)
		}
		out[r] = f
	}
	return out, nil
}

// Ints returns the named column parsed as int.
func (t *Table) Ints(name string) ([]int, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(raw))
	for r, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("dataset: column %q row %d: %w", name, r, err)
		}
		out[r] = n
	}
	return out, nil
}

// Frame is a numeric feature matrix with named columns. All pipeline stages
// downstream of the feature engineer operate on frames.
type Frame struct {
	Cols []string
	X    [][]float64
}

// NumRows returns the number of feature rows.
func (f *Frame) NumRows() int { return len(f.X) }

// Clone returns a deep copy. Stages that rescale or resample work on copies
// so fitted artifacts upstream stay untouched.
func (f *Frame) Clone() *Frame {
	cols := make([]string, len(f.Cols))
	copy(cols, f.Cols)
	x := make([][]float64, len(f.X))
	for i, row := range f.X {
		x[i] = make([]float64, len(row))
		copy(x[i], row)
	}
	return &Frame{Cols: cols, X: x}
}
