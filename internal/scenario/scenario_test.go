package scenario

import (
	"errors"
	"testing"

	"github.com/contactkeval/option-quote/internal/pricing"
)

var baseParams = pricing.Params{
	Spot:           100,
	Strike:         100,
	TimeToMaturity: 1,
	Volatility:     0.2,
	RiskFreeRate:   0.05,
}

func TestSweepDefaultWindow(t *testing.T) {
	res, err := Sweep(Request{Base: baseParams, Axis: AxisSpot})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(res.Points) != defaultSteps {
		t.Fatalf("expected %d points, got %d", defaultSteps, len(res.Points))
	}
	if res.Points[0].X != 50 {
		t.Fatalf("expected default window to start at half the base spot, got %v", res.Points[0].X)
	}
	if res.Points[len(res.Points)-1].X != 150 {
		t.Fatalf("expected default window to end at 1.5x the base spot, got %v", res.Points[len(res.Points)-1].X)
	}
}

func TestSweepStepCap(t *testing.T) {
	res, err := Sweep(Request{Base: baseParams, Axis: AxisVolatility, Steps: 10000})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(res.Points) != maxSteps {
		t.Fatalf("expected steps capped at %d, got %d", maxSteps, len(res.Points))
	}
}

func TestSweepUnknownAxis(t *testing.T) {
	_, err := Sweep(Request{Base: baseParams, Axis: "dividend_yield"})
	if !errors.Is(err, ErrUnknownAxis) {
		t.Fatalf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestSweepInvalidRange(t *testing.T) {
	_, err := Sweep(Request{Base: baseParams, Axis: AxisSpot, Min: 150, Max: 50})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSweepRejectsInvalidEndpoint(t *testing.T) {
	_, err := Sweep(Request{Base: baseParams, Axis: AxisSpot, Min: -10, Max: 10})
	if err == nil {
		t.Fatalf("expected validation error for negative spot endpoint")
	}
	var ipe *pricing.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected *InvalidParameterError, got %T", err)
	}
	if ipe.Field != "spot" {
		t.Fatalf("expected error to name spot, got %q", ipe.Field)
	}
}

func TestSweepRejectsInvalidBaseField(t *testing.T) {
	p := baseParams
	p.Strike = 0

	_, err := Sweep(Request{Base: p, Axis: AxisSpot, Min: 50, Max: 150})
	var ipe *pricing.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected *InvalidParameterError for zero base strike, got %v", err)
	}
	if ipe.Field != "strike" {
		t.Fatalf("expected error to name strike, got %q", ipe.Field)
	}
}

func TestSweptFieldNeedNotBeSet(t *testing.T) {
	p := baseParams
	p.Volatility = 0 // swept axis, endpoints supply the values

	res, err := Sweep(Request{Base: p, Axis: AxisVolatility})
	if err != nil {
		t.Fatalf("sweep over volatility with unset base volatility failed: %v", err)
	}
	if len(res.Points) != defaultSteps {
		t.Fatalf("expected %d points, got %d", defaultSteps, len(res.Points))
	}
}

func TestSweepMatchesEngine(t *testing.T) {
	res, err := Sweep(Request{Base: baseParams, Axis: AxisVolatility, Min: 0.1, Max: 0.5, Steps: 5})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for _, pt := range res.Points {
		p := baseParams
		p.Volatility = pt.X
		want, err := pricing.Quote(p)
		if err != nil {
			t.Fatalf("quote failed at vol %v: %v", pt.X, err)
		}
		// same inputs, same engine: bit-identical
		if pt.CallPrice != want.CallPrice || pt.PutPrice != want.PutPrice || pt.Greeks != want.Greeks {
			t.Fatalf("sweep point at vol %v diverges from direct quote", pt.X)
		}
	}
}

func TestSweepOrderingAndMonotonicity(t *testing.T) {
	res, err := Sweep(Request{Base: baseParams, Axis: AxisSpot, Min: 20, Max: 200, Steps: 37})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i := 1; i < len(res.Points); i++ {
		if res.Points[i].X <= res.Points[i-1].X {
			t.Fatalf("axis values not strictly ascending at index %d", i)
		}
		if res.Points[i].CallPrice < res.Points[i-1].CallPrice-1e-9 {
			t.Fatalf("call price decreased along spot axis at index %d", i)
		}
		if res.Points[i].PutPrice > res.Points[i-1].PutPrice+1e-9 {
			t.Fatalf("put price increased along spot axis at index %d", i)
		}
	}
}

func TestSweepNegativeRateAxis(t *testing.T) {
	res, err := Sweep(Request{Base: baseParams, Axis: AxisRiskFreeRate})
	if err != nil {
		t.Fatalf("rate sweep failed: %v", err)
	}
	if res.Points[0].X != -0.05 {
		t.Fatalf("expected rate window to start at -0.05, got %v", res.Points[0].X)
	}
}
