package analysis

import (
	"sort"

	"bond-yield/internal/model"
	"bond-yield/internal/solver"
)

// BondQuote pairs a bond with its observed market price.
type BondQuote struct {
	Bond         model.BondTerms
	CurrentPrice float64
}

// YieldSummary is the solved yield picture for one quoted bond.
type YieldSummary struct {
	Name         string
	CurrentPrice float64
	YTM          float64
	YTC          float64 // meaningful only when Callable
	Callable     bool
	YTW          float64
	Converged    bool
}

// Summarize solves the quote's yields. For a non-callable bond YTW is just
// the YTM; Converged reports whether every underlying solve converged.
func Summarize(q BondQuote, p solver.Params) (YieldSummary, error) {
	s := YieldSummary{
		Name:         q.Bond.Name,
		CurrentPrice: q.CurrentPrice,
	}

	if q.Bond.Callable() {
		worst, err := solver.SolveWorst(q.CurrentPrice, q.Bond, p)
		if err != nil {
			return YieldSummary{}, err
		}
		s.YTM = worst.YTM.YieldPercent
		s.YTC = worst.YTC.YieldPercent
		s.YTW = worst.YTW
		s.Callable = true
		s.Converged = worst.YTM.Converged && worst.YTC.Converged
		return s, nil
	}

	ytm, err := solver.SolveYTM(q.CurrentPrice, q.Bond, p)
	if err != nil {
		return YieldSummary{}, err
	}
	s.YTM = ytm.YieldPercent
	s.YTW = ytm.YieldPercent
	s.Converged = ytm.Converged
	return s, nil
}

// RankByYieldToWorst summarizes each quote and sorts descending by YTW.
// Quotes that fail to solve (invalid terms or price) are skipped.
func RankByYieldToWorst(quotes []BondQuote, p solver.Params) []YieldSummary {
	out := make([]YieldSummary, 0, len(quotes))
	for _, q := range quotes {
		s, err := Summarize(q, p)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].YTW > out[j].YTW
	})
	return out
}
