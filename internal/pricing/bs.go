// Package pricing implements the Black-Scholes model for European options:
// closed-form call/put prices and the Greek sensitivity set.
//
// Responsibilities:
//   - Validate contract parameters once, at the boundary
//   - Compute d1/d2, prices, and all Greeks as pure functions of the inputs
//   - Keep the formulas total over the validated domain
//
// Design notes:
//   - Every operation is deterministic and side-effect free; concurrent
//     callers with independent Params never contend
//   - Out-of-domain inputs are rejected with *InvalidParameterError, never
//     silently replaced by a default or an intrinsic-value shortcut
package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Params holds the five market and contract inputs of the model.
//
// It is a value object with no lifecycle beyond construction-and-read:
// build it, validate it, price it, discard it. All outputs are pure
// functions of these five fields.
type Params struct {
	Spot           float64 `json:"spot"`             // current underlying price
	Strike         float64 `json:"strike"`           // option strike price
	TimeToMaturity float64 `json:"time_to_maturity"` // years until expiry
	Volatility     float64 `json:"volatility"`       // annualized, as a decimal (0.20 = 20%)
	RiskFreeRate   float64 `json:"risk_free_rate"`   // annualized; zero or negative is allowed
}

// Greeks bundles the eight sensitivities of one contract. They share
// d1/d2, so if the parameters are valid all eight are computable
// together; there is no partial failure.
type Greeks struct {
	CallDelta float64 `json:"call_delta"` // Φ(d1), in (0,1)
	PutDelta  float64 `json:"put_delta"`  // Φ(d1)−1, in (−1,0)
	Gamma     float64 `json:"gamma"`      // φ(d1)/(S·σ·√T), same for call and put
	CallTheta float64 `json:"call_theta"`
	PutTheta  float64 `json:"put_theta"`
	Vega      float64 `json:"vega"` // per 1-percentage-point volatility change
	CallRho   float64 `json:"call_rho"`
	PutRho    float64 `json:"put_rho"`
}

// Result is the full output record for one contract: both premiums plus
// the Greek set. Prices are non-negative for any valid input.
type Result struct {
	CallPrice float64 `json:"call_price"`
	PutPrice  float64 `json:"put_price"`
	Greeks
}

// InvalidParameterError reports a contract parameter outside the model
// domain. Field names the offending input (its JSON name), Constraint the
// violated rule, Value what the caller passed.
//
// It is the only error kind the package produces; detect it with
// errors.As rather than by matching message text.
type InvalidParameterError struct {
	Field      string
	Constraint string
	Value      float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s must be %s (got %v)", e.Field, e.Constraint, e.Value)
}

// Validate checks the model domain: spot, strike, time to maturity and
// volatility must be strictly positive and every field must be finite.
// The risk-free rate may be zero or negative. Zero maturity or volatility
// is an error here, not a limit case to price at intrinsic value.
//
// Violations are reported one at a time, first offending field in
// declaration order.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"spot", p.Spot},
		{"strike", p.Strike},
		{"time_to_maturity", p.TimeToMaturity},
		{"volatility", p.Volatility},
		{"risk_free_rate", p.RiskFreeRate},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidParameterError{Field: f.name, Constraint: "a finite number", Value: f.value}
		}
	}

	// risk_free_rate is exempt from the positivity rule
	for _, f := range fields[:4] {
		if f.value <= 0 {
			return &InvalidParameterError{Field: f.name, Constraint: "> 0", Value: f.value}
		}
	}

	return nil
}

// D1D2 returns the standardized intermediate terms of the model:
//
//	d1 = (ln(S/K) + (r + σ²/2)·T) / (σ·√T)
//	d2 = d1 − σ·√T
//
// Callers validate first; over the validated domain the computation is
// total and both results are finite.
func (p Params) D1D2() (d1, d2 float64) {
	volSqrtT := p.Volatility * math.Sqrt(p.TimeToMaturity)
	d1 = (math.Log(p.Spot/p.Strike) + (p.RiskFreeRate+0.5*p.Volatility*p.Volatility)*p.TimeToMaturity) / volSqrtT
	d2 = d1 - volSqrtT
	return d1, d2
}

// Prices returns the call and put premiums:
//
//	call = S·Φ(d1) − K·e^(−rT)·Φ(d2)
//	put  = K·e^(−rT)·Φ(−d2) − S·Φ(−d1)
//
// Put-call parity (call − put = S − K·e^(−rT)) holds to floating-point
// tolerance; a negative premium would indicate a computation bug, not a
// market state, so no clamping is applied.
func (p Params) Prices() (call, put float64) {
	d1, d2 := p.D1D2()
	discK := p.Strike * math.Exp(-p.RiskFreeRate*p.TimeToMaturity)
	call = p.Spot*normCDF(d1) - discK*normCDF(d2)
	put = discK*normCDF(-d2) - p.Spot*normCDF(-d1)
	return call, put
}

// Greeks returns the full sensitivity set for the contract. Vega is scaled
// by 1/100 so it reads as price change per percentage point of volatility;
// thetas are per year and rhos per unit rate, unscaled.
func (p Params) Greeks() Greeks {
	d1, d2 := p.D1D2()
	sqrtT := math.Sqrt(p.TimeToMaturity)
	discK := p.Strike * math.Exp(-p.RiskFreeRate*p.TimeToMaturity)
	pdfD1 := normPDF(d1)

	// time decay from the diffusion term, common to call and put
	decay := -(p.Spot * p.Volatility * pdfD1) / (2 * sqrtT)

	return Greeks{
		CallDelta: normCDF(d1),
		PutDelta:  normCDF(d1) - 1,
		Gamma:     pdfD1 / (p.Spot * p.Volatility * sqrtT),
		CallTheta: decay - p.RiskFreeRate*discK*normCDF(d2),
		PutTheta:  decay + p.RiskFreeRate*discK*normCDF(-d2),
		Vega:      p.Spot * sqrtT * pdfD1 / 100,
		CallRho:   p.TimeToMaturity * discK * normCDF(d2),
		PutRho:    -p.TimeToMaturity * discK * normCDF(-d2),
	}
}

// Quote validates p and computes the full output record in one step. It is
// the boundary operation consumers call: on success every field of Result
// is finite; on failure the error is a *InvalidParameterError naming the
// offending field, and no partial result leaks out.
func Quote(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	call, put := p.Prices()
	return &Result{CallPrice: call, PutPrice: put, Greeks: p.Greeks()}, nil
}

// stdNormal backs Φ and φ below.
var stdNormal = distuv.UnitNormal

// normCDF is Φ, the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

// normPDF is φ, the standard normal density.
func normPDF(x float64) float64 {
	return stdNormal.Prob(x)
}
