package solver

import (
	"errors"
	"math"

	"bond-yield/internal/model"
)

// PriceAndDerivative returns the present value of a level-coupon cash flow
// schedule and its analytic first derivative with respect to the periodic
// rate, computed in a single pass:
//
//	price = Σ_{t=1..n} coupon/(1+y)^t + redemption/(1+y)^n
//	dP/dy = −Σ_{t=1..n} t·coupon/(1+y)^(t+1) − n·redemption/(1+y)^(n+1)
//
// periodicRate must be > −1 (the solver keeps its trial values inside a much
// tighter band); periods must be >= 1; coupon and redemption are non-negative.
func PriceAndDerivative(periodicRate, coupon float64, periods int, redemption float64) (float64, float64) {
	var price, deriv float64
	base := 1 + periodicRate
	for t := 1; t <= periods; t++ {
		tf := float64(t)
		price += coupon / math.Pow(base, tf)
		deriv -= tf * coupon / math.Pow(base, tf+1)
	}
	nf := float64(periods)
	price += redemption / math.Pow(base, nf)
	deriv -= nf * redemption / math.Pow(base, nf+1)
	return price, deriv
}

// Price computes the market price implied by an annualized yield in percent,
// discounting at yield/PaymentsPerYear per period over the given horizon.
// This is the inverse of Solve and shares its compounding convention.
func Price(bond model.BondTerms, horizonYears, redemption, annualYieldPercent float64) (float64, error) {
	if err := bond.Validate(); err != nil {
		return 0, err
	}
	if redemption <= 0 {
		return 0, errors.New("redemption must be > 0")
	}
	n, err := model.PeriodCount(horizonYears, bond.PaymentsPerYear)
	if err != nil {
		return 0, err
	}
	periodic := annualYieldPercent / 100 / float64(bond.PaymentsPerYear)
	if periodic <= -1 {
		return 0, errors.New("yield implies a non-positive discount base")
	}
	price, _ := PriceAndDerivative(periodic, bond.CouponPerPeriod(), n, redemption)
	return price, nil
}
