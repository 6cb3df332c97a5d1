package solver

import (
	"errors"
	"math"

	"bond-yield/internal/model"
)

// SolveWorst runs the two independent solves for a callable bond and reports
// the yield to worst.
//
// YTM discounts to maturity redeeming at face value; YTC discounts to the
// call date redeeming at the call price. The two solves share no state and
// YTW is the exact minimum of their annualized percents.
func SolveWorst(targetPrice float64, bond model.BondTerms, p Params) (WorstResult, error) {
	if !bond.Callable() {
		return WorstResult{}, errors.New("bond has no call terms")
	}

	ytm, err := Solve(targetPrice, bond, bond.YearsToMaturity, bond.FaceValue, p)
	if err != nil {
		return WorstResult{}, err
	}
	ytc, err := Solve(targetPrice, bond, bond.YearsToCall, bond.CallPrice, p)
	if err != nil {
		return WorstResult{}, err
	}

	return WorstResult{
		YTM: ytm,
		YTC: ytc,
		YTW: math.Min(ytm.YieldPercent, ytc.YieldPercent),
	}, nil
}
