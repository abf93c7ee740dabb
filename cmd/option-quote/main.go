package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/contactkeval/option-quote/internal/config"
	"github.com/contactkeval/option-quote/internal/logger"
	"github.com/contactkeval/option-quote/internal/pricing"
	"github.com/contactkeval/option-quote/internal/report"
	"github.com/contactkeval/option-quote/internal/server"
)

const usage = "usage: option-quote [flags] <spot> <strike> <time_to_maturity> <volatility> <risk_free_rate>"

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	rest := flag.Bool("rest", false, "run as REST server (quotes, sweeps, datasets)")
	port := flag.String("port", "", "listen address override, e.g. :8080")
	out := flag.String("out", "", "report directory override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *port != "" {
		cfg.Server.Listen = *port
	}
	if *out != "" {
		cfg.Report.Dir = *out
	}

	logger.SetVerbosity(cfg.Log.Verbosity)
	logger.ConfigureFile(logger.FileConfig{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})

	if *rest {
		log.Printf("[info] starting REST server on %s", cfg.Server.Listen)
		log.Fatal(server.New(cfg).ListenAndServe())
		return
	}

	args := flag.Args()
	if len(args) != 5 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	names := []string{"spot", "strike", "time_to_maturity", "volatility", "risk_free_rate"}
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: not a number: %q\n", names[i], a)
			os.Exit(1)
		}
		vals[i] = v
	}

	p := pricing.Params{
		Spot:           vals[0],
		Strike:         vals[1],
		TimeToMaturity: vals[2],
		Volatility:     vals[3],
		RiskFreeRate:   vals[4],
	}

	start := time.Now()
	res, err := pricing.Quote(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pairs := []struct {
		key string
		val float64
	}{
		{"call_price", res.CallPrice},
		{"put_price", res.PutPrice},
		{"call_delta", res.CallDelta},
		{"put_delta", res.PutDelta},
		{"gamma", res.Gamma},
		{"call_theta", res.CallTheta},
		{"put_theta", res.PutTheta},
		{"vega", res.Vega},
		{"call_rho", res.CallRho},
		{"put_rho", res.PutRho},
	}
	for _, kv := range pairs {
		fmt.Printf("%s=%.6f\n", kv.key, kv.val)
	}

	// reports are best-effort; the stdout contract above is the product
	if err := os.MkdirAll(cfg.Report.Dir, 0755); err != nil {
		log.Printf("[warn] could not create output dir %s: %v", cfg.Report.Dir, err)
	}
	_ = report.WriteQuoteJSON(p, res, cfg.Report.Dir)
	_ = report.WriteQuoteCSV(p, res, cfg.Report.Dir)
	log.Printf("[done] finished in %v, wrote reports to %s", time.Since(start), cfg.Report.Dir)
}
