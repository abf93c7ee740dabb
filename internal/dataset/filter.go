package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Knetic/govaluate"

	"github.com/contactkeval/option-quote/internal/logger"
)

// Typed errors allow callers and tests to detect failure categories
// without string matching.
var ErrInvalidFilterExpression = errors.New("invalid filter expression")

// Filter returns a new dataset holding the rows for which expr evaluates
// to true. Column names are bound as expression parameters: cells that
// parse as floats are bound numerically, everything else (null markers
// included) as raw strings.
//
// Supported syntax is govaluate's, e.g. `close > 100 && volume >= 1e6`
// or `region == "EMEA"`. A non-boolean result is an error, never a
// silently dropped row.
func (d *Dataset) Filter(expr string) (*Dataset, error) {
	eval, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilterExpression, err)
	}

	logger.Debugf("event=filter_dataset name=%s expr=%s", d.Name, expr)

	kept := make([][]string, 0, len(d.rows))
	for ri, row := range d.rows {
		params := make(map[string]any, len(d.Columns))
		for ci, col := range d.Columns {
			cell := row[ci]
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				params[col] = v
			} else {
				params[col] = cell
			}
		}

		res, err := eval.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidFilterExpression, ri+1, err)
		}
		keep, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: result is %T, want bool", ErrInvalidFilterExpression, res)
		}
		if keep {
			kept = append(kept, row)
		}
	}

	logger.Debugf("event=filter_result name=%s matched=%d of=%d", d.Name, len(kept), len(d.rows))

	return &Dataset{Name: d.Name, Columns: d.Columns, rows: kept}, nil
}
