// Package dataset implements the in-memory CSV analysis layer behind the
// dashboard's data page: parse an uploaded file once, then preview,
// summarize, and filter it on demand.
//
// Responsibilities:
//   - Parse arbitrary-schema CSV uploads (header row required)
//   - Per-column summary statistics in the describe style
//   - Row filtering with boolean expressions over column values
//   - Bounded, mutex-guarded in-memory storage keyed by generated IDs
//
// Design notes:
//   - Cells are kept as strings; numeric interpretation happens per
//     operation, so a mixed column degrades to text instead of failing
//   - Nothing is persisted; restarting the process drops all datasets
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrEmptyDataset = errors.New("dataset has no header row")

// Dataset is one parsed CSV: a header plus data rows, all cells as
// strings. It is immutable after Parse.
type Dataset struct {
	Name    string
	Columns []string
	rows    [][]string
}

// Parse reads a full CSV document from r. The first record is the header
// and every header cell must be non-blank; the csv reader enforces a
// consistent field count across rows.
func Parse(name string, r io.Reader) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	cols := make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, fmt.Errorf("blank column name at position %d", i+1)
		}
		cols[i] = h
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		for i, cell := range rec {
			row[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}

	return &Dataset{Name: name, Columns: cols, rows: rows}, nil
}

// NumRows returns the number of data rows (header excluded).
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// Preview returns copies of up to n data rows from the top.
func (d *Dataset) Preview(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(d.rows) {
		n = len(d.rows)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = append([]string(nil), d.rows[i]...)
	}
	return out
}
