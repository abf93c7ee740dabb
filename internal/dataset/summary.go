package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Column type labels used in summaries.
const (
	TypeNumeric = "numeric"
	TypeText    = "text"
)

// ColumnSummary is the describe-style profile of one column. The stat
// fields are nil for text columns and for stats that need more data
// (StdDev wants at least two values).
type ColumnSummary struct {
	Column string   `json:"column"`
	Type   string   `json:"type"`
	Count  int      `json:"count"` // non-null cells
	Nulls  int      `json:"nulls"`
	Mean   *float64 `json:"mean,omitempty"`
	StdDev *float64 `json:"std_dev,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Q1     *float64 `json:"q1,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Q3     *float64 `json:"q3,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// isNull reports whether a cell counts as missing.
func isNull(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "na", "n/a", "null", "nan":
		return true
	}
	return false
}

// Describe profiles every column in order. A column is numeric when it
// has at least one non-null cell and every non-null cell parses as a
// finite float; numeric columns get mean, sample standard deviation,
// min/max and empirical quartiles.
func (d *Dataset) Describe() []ColumnSummary {
	out := make([]ColumnSummary, 0, len(d.Columns))

	for ci, col := range d.Columns {
		sum := ColumnSummary{Column: col, Type: TypeText}
		numeric := true
		var vals []float64

		for _, row := range d.rows {
			cell := row[ci]
			if isNull(cell) {
				sum.Nulls++
				continue
			}
			sum.Count++
			if !numeric {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				numeric = false
				vals = nil
				continue
			}
			vals = append(vals, v)
		}

		if numeric && len(vals) > 0 {
			sum.Type = TypeNumeric
			sort.Float64s(vals)

			mean := stat.Mean(vals, nil)
			min, max := vals[0], vals[len(vals)-1]
			q1 := stat.Quantile(0.25, stat.Empirical, vals, nil)
			median := stat.Quantile(0.5, stat.Empirical, vals, nil)
			q3 := stat.Quantile(0.75, stat.Empirical, vals, nil)

			sum.Mean = &mean
			sum.Min, sum.Max = &min, &max
			sum.Q1, sum.Median, sum.Q3 = &q1, &median, &q3
			if len(vals) > 1 {
				sd := stat.StdDev(vals, nil)
				sum.StdDev = &sd
			}
		}

		out = append(out, sum)
	}

	return out
}
