package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bond-yield/internal/analysis"
	"bond-yield/internal/config"
	"bond-yield/internal/model"
	"bond-yield/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		cmdSolve(os.Args[2:])
	case "price":
		cmdPrice(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli solve --config examples/config.yaml [--price 950] [--trace-out results/trace.csv]")
	fmt.Println("  cli price --config examples/config.yaml --yield 5.25 [--to-call]")
	fmt.Println("  cli rank --bonds examples/bonds")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - solve reports YTM, plus YTC and YTW when the bond has call terms")
	fmt.Println("  - rank solves yield-to-worst for every preset in the directory that has a current_price")
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	price := fs.Float64("price", 0, "Optional: market price override (default: config current_price)")
	traceOut := fs.String("trace-out", "", "Optional: write the YTM iteration trace to this CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(2)
	}

	bond, err := model.NewBond(cfg.Bond.ToModelTerms())
	if err != nil {
		panic(err)
	}

	target := cfg.Bond.CurrentPrice
	if *price > 0 {
		target = *price
	}
	if target <= 0 {
		fmt.Println("no market price: set current_price in the config or pass --price")
		os.Exit(2)
	}

	params := cfg.Solver.ToSolverParams()
	params.RecordTrace = *traceOut != ""

	ytm, err := solver.SolveYTM(target, *bond, params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Bond: %s  price=%.4f  coupon=%.3f%%  freq=%d  maturity=%.2fy\n",
		bondName(bond), target, bond.CouponRate, bond.PaymentsPerYear, bond.YearsToMaturity)
	printResult("YTM", ytm)

	if bond.Callable() {
		worst, err := solver.SolveWorst(target, *bond, cfg.Solver.ToSolverParams())
		if err != nil {
			panic(err)
		}
		printResult("YTC", worst.YTC)
		fmt.Printf("YTW: %.4f%%\n", worst.YTW)
	}

	if *traceOut != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(*traceOut), 0o755); err != nil {
			panic(err)
		}
		if err := solver.WriteTraceCSV(*traceOut, ytm.Trace); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d trace rows to %s\n", len(ytm.Trace), *traceOut)
	}
}

func cmdPrice(args []string) {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	yieldPct := fs.Float64("yield", 0, "Annualized yield in percent")
	toCall := fs.Bool("to-call", false, "Price to the call date and call price")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(2)
	}
	bond, err := model.NewBond(cfg.Bond.ToModelTerms())
	if err != nil {
		panic(err)
	}

	horizon := bond.YearsToMaturity
	redemption := bond.FaceValue
	if *toCall {
		if !bond.Callable() {
			fmt.Println("--to-call requires call terms in the bond config")
			os.Exit(2)
		}
		horizon = bond.YearsToCall
		redemption = bond.CallPrice
	}

	price, err := solver.Price(*bond, horizon, redemption, *yieldPct)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Price at %.4f%% = %.4f\n", *yieldPct, price)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	bondPaths := fs.String("bonds", "examples/bonds", "Comma-separated preset YAML paths or a directory")
	_ = fs.Parse(args)

	var quotes []analysis.BondQuote
	for _, p := range splitPaths(*bondPaths) {
		info, err := os.Stat(p)
		if err != nil {
			panic(err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(p)
			if err != nil {
				panic(err)
			}
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
					continue
				}
				quotes = appendQuote(quotes, filepath.Join(p, e.Name()))
			}
		} else {
			quotes = appendQuote(quotes, p)
		}
	}

	ranked := analysis.RankByYieldToWorst(quotes, solver.DefaultParams())
	fmt.Printf("%-4s %-24s %-10s %-8s %-8s %-8s %-9s\n", "rank", "bond", "price", "ytm", "ytc", "ytw", "converged")
	for i, r := range ranked {
		ytc := "-"
		if r.Callable {
			ytc = fmt.Sprintf("%.3f", r.YTC)
		}
		fmt.Printf("%-4d %-24s %-10.3f %-8.3f %-8s %-8.3f %-9v\n",
			i+1,
			r.Name,
			r.CurrentPrice,
			r.YTM,
			ytc,
			r.YTW,
			r.Converged,
		)
	}
}

// appendQuote loads one preset; presets without a current_price are skipped
// since there is nothing to solve against.
func appendQuote(quotes []analysis.BondQuote, path string) []analysis.BondQuote {
	b, err := config.LoadBondFile(path)
	if err != nil {
		panic(err)
	}
	if b.CurrentPrice <= 0 {
		return quotes
	}
	terms := b.ToModelTerms()
	if terms.Name == "" {
		terms.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	}
	return append(quotes, analysis.BondQuote{Bond: terms, CurrentPrice: b.CurrentPrice})
}

func printResult(label string, r solver.Result) {
	mark := ""
	if !r.Converged {
		mark = fmt.Sprintf("  (best effort, residual=%.6f)", r.Residual)
	}
	fmt.Printf("%s: %.4f%%  iterations=%d%s\n", label, r.YieldPercent, r.Iterations, mark)
}

func bondName(b *model.BondTerms) string {
	if b.Name != "" {
		return b.Name
	}
	return "(unnamed)"
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
