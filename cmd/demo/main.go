package main

import (
	"flag"
	"fmt"

	"bond-yield/internal/config"
	"bond-yield/internal/model"
	"bond-yield/internal/solver"
)

// Demo:
// - Build a discount bond (priced below face)
// - Solve for its yield to maturity, printing every Newton iteration
// - Add call terms and show the yield-to-worst composition
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	price := flag.Float64("price", 950, "Market price")
	outCSV := flag.String("out", "", "Optional path to write the trace CSV (e.g. results/trace.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	bond := model.BondTerms{
		Name:            "demo 10y 5% semi-annual",
		FaceValue:       1000,
		CouponRate:      5,
		PaymentsPerYear: 2,
		YearsToMaturity: 10,
		YearsToCall:     5,
		CallPrice:       1025,
	}
	target := *price
	params := solver.DefaultParams()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		bond = cfg.Bond.ToModelTerms()
		params = cfg.Solver.ToSolverParams()
		if cfg.Bond.CurrentPrice > 0 {
			target = cfg.Bond.CurrentPrice
		}
	}

	params.RecordTrace = true

	ytm, err := solver.SolveYTM(target, bond, params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Bond: %s\n", bond.Name)
	fmt.Printf("Solving PV(y) = %.2f  (face=%.0f coupon=%.2f%% freq=%d maturity=%.1fy)\n\n",
		target, bond.FaceValue, bond.CouponRate, bond.PaymentsPerYear, bond.YearsToMaturity)

	for _, r := range ytm.Trace {
		fmt.Printf(
			"iter=%2d  y=%8.5f  price=%10.4f  diff=%10.4f  dP/dy=%12.2f  %s\n",
			r.Iter, r.Yield, r.Price, r.Diff, r.Derivative, r.Step,
		)
	}

	fmt.Printf("\nYTM=%.4f%%  converged=%v  iterations=%d  residual=%.6f\n",
		ytm.YieldPercent, ytm.Converged, ytm.Iterations, ytm.Residual)

	if bond.Callable() {
		worst, err := solver.SolveWorst(target, bond, solver.DefaultParams())
		if err != nil {
			panic(err)
		}
		fmt.Printf("YTC=%.4f%%  YTW=min(YTM, YTC)=%.4f%%\n", worst.YTC.YieldPercent, worst.YTW)
	}

	if *outCSV != "" {
		if err := solver.WriteTraceCSV(*outCSV, ytm.Trace); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
