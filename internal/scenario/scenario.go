// Package scenario produces chart-ready series by sweeping one pricing
// parameter across a range and re-quoting at every step.
//
// A sweep is the batch form of the dashboard's recompute-on-change loop:
// deterministic, ordered by ascending axis value, and cheap enough to run
// per request without caching.
package scenario

import (
	"errors"
	"fmt"

	"github.com/contactkeval/option-quote/internal/logger"
	"github.com/contactkeval/option-quote/internal/pricing"
)

//
// ==========================
// Error taxonomy
// ==========================
//

var (
	ErrUnknownAxis  = errors.New("unknown sweep axis")
	ErrInvalidRange = errors.New("invalid sweep range")
)

//
// ==========================
// Domain Types
// ==========================
//

// Axis selects which parameter a sweep varies.
type Axis string

const (
	AxisSpot           Axis = "spot"
	AxisStrike         Axis = "strike"
	AxisVolatility     Axis = "volatility"
	AxisTimeToMaturity Axis = "time_to_maturity"
	AxisRiskFreeRate   Axis = "risk_free_rate"
)

const (
	defaultSteps = 50
	maxSteps     = 500
)

// Request describes one sweep. Min/Max/Steps are optional: a zero range
// selects a per-axis default window around the base value, and Steps
// defaults to 50 (capped at 500).
type Request struct {
	Base  pricing.Params `json:"base"`
	Axis  Axis           `json:"axis"`
	Min   float64        `json:"min,omitempty"`
	Max   float64        `json:"max,omitempty"`
	Steps int            `json:"steps,omitempty"`
}

// Point is one sample of a sweep: the axis value plus the full quote
// taken there.
type Point struct {
	X         float64        `json:"x"`
	CallPrice float64        `json:"call_price"`
	PutPrice  float64        `json:"put_price"`
	Greeks    pricing.Greeks `json:"greeks"`
}

// Result holds the sampled series in ascending axis order.
type Result struct {
	Axis   Axis    `json:"axis"`
	Points []Point `json:"points"`
}

//
// ==========================
// Sweep
// ==========================
//

// Sweep fills request defaults, validates the range, and re-quotes the
// base contract at evenly spaced axis values from Min to Max inclusive.
//
// The base record is validated with the axis endpoints substituted in, so
// the swept field itself does not need to be pre-set; every other field
// must already be valid. Endpoint validation covers the interior because
// the grid is linear.
func Sweep(req Request) (*Result, error) {
	switch req.Axis {
	case AxisSpot, AxisStrike, AxisVolatility, AxisTimeToMaturity, AxisRiskFreeRate:
		// ok
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxis, req.Axis)
	}

	// fill defaults
	if req.Steps < 2 {
		req.Steps = defaultSteps
	}
	if req.Steps > maxSteps {
		req.Steps = maxSteps
	}
	if req.Min == 0 && req.Max == 0 {
		req.Min, req.Max = defaultWindow(req.Axis, req.Base)
	}

	if req.Min >= req.Max {
		return nil, fmt.Errorf("%w: min=%v max=%v", ErrInvalidRange, req.Min, req.Max)
	}

	for _, edge := range []float64{req.Min, req.Max} {
		if err := substitute(req.Base, req.Axis, edge).Validate(); err != nil {
			return nil, err
		}
	}

	logger.Debugf("event=sweep axis=%s min=%g max=%g steps=%d", req.Axis, req.Min, req.Max, req.Steps)

	span := req.Max - req.Min
	points := make([]Point, 0, req.Steps)
	for i := 0; i < req.Steps; i++ {
		x := req.Min + span*float64(i)/float64(req.Steps-1)
		res, err := pricing.Quote(substitute(req.Base, req.Axis, x))
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			X:         x,
			CallPrice: res.CallPrice,
			PutPrice:  res.PutPrice,
			Greeks:    res.Greeks,
		})
	}

	return &Result{Axis: req.Axis, Points: points}, nil
}

// substitute returns base with the axis field replaced by v.
func substitute(base pricing.Params, axis Axis, v float64) pricing.Params {
	switch axis {
	case AxisSpot:
		base.Spot = v
	case AxisStrike:
		base.Strike = v
	case AxisVolatility:
		base.Volatility = v
	case AxisTimeToMaturity:
		base.TimeToMaturity = v
	case AxisRiskFreeRate:
		base.RiskFreeRate = v
	}
	return base
}

// defaultWindow picks a chart-friendly range around the base value when
// the request leaves min/max unset.
func defaultWindow(axis Axis, base pricing.Params) (min, max float64) {
	switch axis {
	case AxisSpot:
		return 0.5 * base.Spot, 1.5 * base.Spot
	case AxisStrike:
		return 0.5 * base.Strike, 1.5 * base.Strike
	case AxisVolatility:
		return 0.05, 0.75
	case AxisTimeToMaturity:
		return 1.0 / 52, 2.0
	case AxisRiskFreeRate:
		return -0.05, 0.15
	}
	return 0, 0
}
