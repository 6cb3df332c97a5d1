package solver

import (
	"errors"
	"math"

	"bond-yield/internal/model"
)

// Guard constants carried from the original calculators. Params lets callers
// override the first two; the rest are internal numeric safeguards.
const (
	DefaultTolerance     = 0.0001
	DefaultMaxIterations = 100

	yieldFloor   = -0.5
	yieldCeiling = 2.0
	nudgeStep    = 0.01
	derivFloor   = 1e-10
)

// Params tunes a single solve. Zero values fall back to the defaults.
type Params struct {
	// Tolerance is the convergence threshold on |price − target|, in price units.
	Tolerance float64

	MaxIterations int

	// InitialGuess is the starting annualized rate as a decimal.
	// When 0, the bond's coupon rate is used.
	InitialGuess float64

	// RecordTrace populates Result.Trace with one row per iteration.
	RecordTrace bool
}

func DefaultParams() Params {
	return Params{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func (p Params) withDefaults() Params {
	if p.Tolerance <= 0 {
		p.Tolerance = DefaultTolerance
	}
	if p.MaxIterations <= 0 {
		p.MaxIterations = DefaultMaxIterations
	}
	return p
}

// Solve finds the annualized yield y (reported in percent) such that the
// present value of the bond's cash flows over horizonYears, discounted at
// y/PaymentsPerYear per period and redeemed at the given amount, matches
// targetPrice.
//
// Newton-Raphson with an analytic derivative, plus two safeguards:
// a near-zero derivative skips the Newton step and nudges the rate instead,
// and an update landing outside (−50%, 200%) annualized is replaced by a
// small step toward the root. If the iteration budget runs out the last
// iterate is returned with Converged=false; only invalid inputs error.
func Solve(targetPrice float64, bond model.BondTerms, horizonYears, redemption float64, p Params) (Result, error) {
	if err := bond.Validate(); err != nil {
		return Result{}, err
	}
	if targetPrice <= 0 {
		return Result{}, errors.New("target price must be > 0")
	}
	if redemption <= 0 {
		return Result{}, errors.New("redemption must be > 0")
	}
	n, err := model.PeriodCount(horizonYears, bond.PaymentsPerYear)
	if err != nil {
		return Result{}, err
	}
	p = p.withDefaults()

	coupon := bond.CouponPerPeriod()
	m := float64(bond.PaymentsPerYear)

	y := p.InitialGuess
	if y == 0 {
		y = bond.CouponRate / 100
	}

	var res Result
	for iter := 0; iter < p.MaxIterations; iter++ {
		price, dPeriodic := PriceAndDerivative(y/m, coupon, n, redemption)
		diff := price - targetPrice
		deriv := dPeriodic / m // chain rule through the per-period scaling
		res.Iterations = iter + 1

		if math.Abs(diff) < p.Tolerance {
			res.Converged = true
			res.Residual = diff
			if p.RecordTrace {
				res.Trace = append(res.Trace, TraceRow{
					Iter: iter, Yield: y, Price: price, Diff: diff, Derivative: deriv, Step: StepConverged,
				})
			}
			break
		}

		yEval := y
		step := StepNewton
		switch {
		case math.Abs(deriv) < derivFloor:
			// Flat spot: a Newton step would divide by ~0.
			y += nudgeStep
			step = StepNudge
		default:
			next := y - diff/deriv
			if next <= yieldFloor || next >= yieldCeiling {
				// Newton overshot the admissible band. PV is decreasing in y,
				// so step toward the root: price above target means the trial
				// yield is too low.
				if diff > 0 {
					y += nudgeStep
				} else {
					y -= nudgeStep
				}
				step = StepNudge
			} else {
				y = next
			}
		}

		if p.RecordTrace {
			res.Trace = append(res.Trace, TraceRow{
				Iter: iter, Yield: yEval, Price: price, Diff: diff, Derivative: deriv, Step: step,
			})
		}
	}

	if !res.Converged {
		// Budget exhausted: report the residual at the returned iterate.
		price, _ := PriceAndDerivative(y/m, coupon, n, redemption)
		res.Residual = price - targetPrice
	}
	res.YieldPercent = y * 100
	return res, nil
}

// SolveYTM solves for the yield to maturity: redemption at face value on the
// maturity date.
func SolveYTM(targetPrice float64, bond model.BondTerms, p Params) (Result, error) {
	return Solve(targetPrice, bond, bond.YearsToMaturity, bond.FaceValue, p)
}
