// Package readstats computes summary statistics over collections of
// sequencing reads and renders them as an aligned text report. The input is
// a column-oriented Frame of per-read measurements; the output is a
// ReadStats record plus its textual rendering. All computations are pure
// functions over an in-memory snapshot.
package readstats

import (
	"github.com/pkg/errors"
)

// Column names shared with NanoPlot-style summary producers. Lengths is the
// only required column; the others enable optional statistics when present.
const (
	ColLengths         = "lengths"
	ColQuals           = "quals"
	ColAlignedLengths  = "aligned_lengths"
	ColPercentIdentity = "percentIdentity"
	ColChannelIDs      = "channelIDs"
)

// ErrMissingColumn is returned by Frame.Column for unknown column names.
var ErrMissingColumn = errors.New("missing column")

// Frame is a column-oriented table of per-read numeric measurements. Every
// column has one value per read; rows stay aligned across columns. Column
// order is stable, so iteration over a Frame is deterministic.
type Frame struct {
	names []string
	cols  map[string][]float64
	n     int
}

// NewFrame returns an empty Frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string][]float64)}
}

// SetColumn adds or replaces a column. The first column fixes the row count;
// later columns must match it.
func (f *Frame) SetColumn(name string, values []float64) error {
	if len(f.names) > 0 && len(values) != f.n {
		return errors.Errorf("column %q has %d rows, frame has %d", name, len(values), f.n)
	}
	if _, ok := f.cols[name]; !ok {
		f.names = append(f.names, name)
	}
	f.n = len(values)
	f.cols[name] = values
	return nil
}

// Column returns the values of the named column, or an error wrapping
// ErrMissingColumn when the column does not exist.
func (f *Frame) Column(name string) ([]float64, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, errors.Wrap(ErrMissingColumn, name)
	}
	return col, nil
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.n
}

// Select returns a new Frame containing the rows where keep is true, in
// their original order, with all columns filtered in lockstep.
func (f *Frame) Select(keep []bool) (*Frame, error) {
	if len(keep) != f.n {
		return nil, errors.Errorf("selection mask has %d rows, frame has %d", len(keep), f.n)
	}
	out := NewFrame()
	for _, name := range f.names {
		src := f.cols[name]
		var dst []float64
		for i, k := range keep {
			if k {
				dst = append(dst, src[i])
			}
		}
		// Columns stay aligned by construction.
		_ = out.SetColumn(name, dst)
	}
	return out, nil
}
