// Package report writes quote and sweep results to files. It is the
// export layer behind the CLI's -out flag and keeps one canonical writer
// per format.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-quote/internal/pricing"
	"github.com/contactkeval/option-quote/internal/scenario"
)

// CSV cells are rendered with fixed scales so exports are stable and
// diff-friendly: prices and inputs at 4 places, Greeks at 6.
const (
	priceScale = 4
	greekScale = 6
)

// QuoteReport pairs the inputs with the computed record so an exported
// file is self-describing.
type QuoteReport struct {
	Params pricing.Params  `json:"params"`
	Result *pricing.Result `json:"result"`
}

// WriteQuoteJSON writes quote.json into outdir at full float precision.
func WriteQuoteJSON(p pricing.Params, res *pricing.Result, outdir string) error {
	b, err := json.MarshalIndent(QuoteReport{Params: p, Result: res}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "quote.json"), b, 0644)
}

type quoteRow struct {
	Spot           string `csv:"spot"`
	Strike         string `csv:"strike"`
	TimeToMaturity string `csv:"time_to_maturity"`
	Volatility     string `csv:"volatility"`
	RiskFreeRate   string `csv:"risk_free_rate"`
	CallPrice      string `csv:"call_price"`
	PutPrice       string `csv:"put_price"`
	CallDelta      string `csv:"call_delta"`
	PutDelta       string `csv:"put_delta"`
	Gamma          string `csv:"gamma"`
	CallTheta      string `csv:"call_theta"`
	PutTheta       string `csv:"put_theta"`
	Vega           string `csv:"vega"`
	CallRho        string `csv:"call_rho"`
	PutRho         string `csv:"put_rho"`
}

// WriteQuoteCSV writes quote.csv (header plus one data row) into outdir.
func WriteQuoteCSV(p pricing.Params, res *pricing.Result, outdir string) error {
	rows := []quoteRow{{
		Spot:           round(p.Spot, priceScale),
		Strike:         round(p.Strike, priceScale),
		TimeToMaturity: round(p.TimeToMaturity, priceScale),
		Volatility:     round(p.Volatility, priceScale),
		RiskFreeRate:   round(p.RiskFreeRate, priceScale),
		CallPrice:      round(res.CallPrice, priceScale),
		PutPrice:       round(res.PutPrice, priceScale),
		CallDelta:      round(res.CallDelta, greekScale),
		PutDelta:       round(res.PutDelta, greekScale),
		Gamma:          round(res.Gamma, greekScale),
		CallTheta:      round(res.CallTheta, greekScale),
		PutTheta:       round(res.PutTheta, greekScale),
		Vega:           round(res.Vega, greekScale),
		CallRho:        round(res.CallRho, greekScale),
		PutRho:         round(res.PutRho, greekScale),
	}}
	return writeCSVFile(filepath.Join(outdir, "quote.csv"), &rows)
}

type sweepRow struct {
	X         string `csv:"x"`
	CallPrice string `csv:"call_price"`
	PutPrice  string `csv:"put_price"`
	CallDelta string `csv:"call_delta"`
	PutDelta  string `csv:"put_delta"`
	Gamma     string `csv:"gamma"`
	CallTheta string `csv:"call_theta"`
	PutTheta  string `csv:"put_theta"`
	Vega      string `csv:"vega"`
	CallRho   string `csv:"call_rho"`
	PutRho    string `csv:"put_rho"`
}

// WriteSweepCSV writes sweep.csv, one row per point, into outdir.
func WriteSweepCSV(res *scenario.Result, outdir string) error {
	rows := make([]sweepRow, 0, len(res.Points))
	for _, pt := range res.Points {
		rows = append(rows, sweepRow{
			X:         round(pt.X, priceScale),
			CallPrice: round(pt.CallPrice, priceScale),
			PutPrice:  round(pt.PutPrice, priceScale),
			CallDelta: round(pt.Greeks.CallDelta, greekScale),
			PutDelta:  round(pt.Greeks.PutDelta, greekScale),
			Gamma:     round(pt.Greeks.Gamma, greekScale),
			CallTheta: round(pt.Greeks.CallTheta, greekScale),
			PutTheta:  round(pt.Greeks.PutTheta, greekScale),
			Vega:      round(pt.Greeks.Vega, greekScale),
			CallRho:   round(pt.Greeks.CallRho, greekScale),
			PutRho:    round(pt.Greeks.PutRho, greekScale),
		})
	}
	return writeCSVFile(filepath.Join(outdir, "sweep.csv"), &rows)
}

func writeCSVFile(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(rows, f)
}

// round renders v with at most the given number of decimal places,
// half away from zero.
func round(v float64, places int32) string {
	return decimal.NewFromFloat(v).Round(places).String()
}
