package model

import (
	"errors"
	"math"
)

// BondTerms defines the contractual terms of a fixed-coupon bond.
// Units:
// - FaceValue: currency units (e.g. 1000)
// - CouponRate: annual rate in percent (e.g. 5 for 5%)
// - PaymentsPerYear: coupons per year (1 = annual, 2 = semi-annual)
// - YearsToMaturity / YearsToCall: years from today
// - CallPrice: currency units, redemption if called
type BondTerms struct {
	Name            string
	FaceValue       float64
	CouponRate      float64
	PaymentsPerYear int
	YearsToMaturity float64
	YearsToCall     float64
	CallPrice       float64
}

func NewBond(terms BondTerms) (*BondTerms, error) {
	b := terms
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *BondTerms) Validate() error {
	if b.FaceValue <= 0 {
		return errors.New("FaceValue must be > 0")
	}
	if b.CouponRate < 0 {
		return errors.New("CouponRate must be >= 0")
	}
	if b.PaymentsPerYear <= 0 {
		return errors.New("PaymentsPerYear must be > 0")
	}
	if b.YearsToMaturity <= 0 {
		return errors.New("YearsToMaturity must be > 0")
	}
	if _, err := PeriodCount(b.YearsToMaturity, b.PaymentsPerYear); err != nil {
		return err
	}
	if b.Callable() {
		if b.YearsToCall <= 0 {
			return errors.New("YearsToCall must be > 0")
		}
		if b.YearsToCall > b.YearsToMaturity {
			return errors.New("YearsToCall must be <= YearsToMaturity")
		}
		if b.CallPrice <= 0 {
			return errors.New("CallPrice must be > 0 for a callable bond")
		}
		if _, err := PeriodCount(b.YearsToCall, b.PaymentsPerYear); err != nil {
			return err
		}
	}
	return nil
}

// Callable reports whether call terms are present. Both fields must be set;
// Validate rejects a half-specified call schedule.
func (b *BondTerms) Callable() bool {
	return b.YearsToCall > 0 || b.CallPrice > 0
}

// CouponPerPeriod is the cash coupon paid each period:
// CouponRate% of face, split across the year's payments.
func (b *BondTerms) CouponPerPeriod() float64 {
	return b.FaceValue * b.CouponRate / 100 / float64(b.PaymentsPerYear)
}

// MaturityPeriods is the number of coupon dates until maturity.
func (b *BondTerms) MaturityPeriods() (int, error) {
	return PeriodCount(b.YearsToMaturity, b.PaymentsPerYear)
}

// CallPeriods is the number of coupon dates until the call date.
func (b *BondTerms) CallPeriods() (int, error) {
	return PeriodCount(b.YearsToCall, b.PaymentsPerYear)
}

// PeriodCount converts a horizon in years to a whole number of coupon periods.
// horizonYears * paymentsPerYear must land on an integer (within float tolerance):
// a schedule with a fractional coupon date is rejected rather than rounded.
func PeriodCount(horizonYears float64, paymentsPerYear int) (int, error) {
	exact := horizonYears * float64(paymentsPerYear)
	n := math.Round(exact)
	if math.Abs(exact-n) > 1e-9 {
		return 0, errors.New("horizon years times payments per year must be a whole number of periods")
	}
	if n < 1 {
		return 0, errors.New("schedule must contain at least one period")
	}
	return int(n), nil
}
