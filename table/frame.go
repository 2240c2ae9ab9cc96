// Package table provides the small, column-oriented view the indexer
// family returns when PostProcessConfig.HeadersAsTable is set. It is
// deliberately not a general dataframe: a tabular header view needs
// nothing beyond named, equal-length columns, so that is all Frame
// models.
package table

import "fmt"

// Column is one named field's values across a batch of decoded records,
// in row order. Values are stored as float64 regardless of the field's
// declared scalar family: every width this reader supports up to int32
// round-trips through float64 losslessly; int64/uint64 header fields (rare
// in SEG-Y trace/binary headers) lose precision above 2^53, which is an
// accepted tradeoff for a single uniform column representation.
type Column struct {
	Name   string
	Values []float64
}

// Frame is a batch of named, equal-length columns, in field declaration
// order.
type Frame struct {
	columns []Column
	index   map[string]int
	rows    int
}

// NewFrame builds a Frame from columns, which must all have equal length.
func NewFrame(columns []Column) (*Frame, error) {
	f := &Frame{columns: columns, index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if i == 0 {
			f.rows = len(c.Values)
		} else if len(c.Values) != f.rows {
			return nil, fmt.Errorf("table: column %q has %d rows, want %d", c.Name, len(c.Values), f.rows)
		}
		f.index[c.Name] = i
	}
	return f, nil
}

// Rows returns the number of rows every column holds.
func (f *Frame) Rows() int { return f.rows }

// Columns returns the frame's column names, in declaration order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column's values.
func (f *Frame) Column(name string) ([]float64, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.columns[i].Values, true
}

// At returns the value of column name at row i.
func (f *Frame) At(name string, row int) (float64, bool) {
	values, ok := f.Column(name)
	if !ok || row < 0 || row >= len(values) {
		return 0, false
	}
	return values[row], true
}
