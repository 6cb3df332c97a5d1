package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTerms() BondTerms {
	return BondTerms{
		Name:            "10Y 5% semi-annual",
		FaceValue:       1000,
		CouponRate:      5,
		PaymentsPerYear: 2,
		YearsToMaturity: 10,
	}
}

func TestNewBond_Valid(t *testing.T) {
	b, err := NewBond(validTerms())
	require.NoError(t, err)
	assert.Equal(t, 25.0, b.CouponPerPeriod())
	assert.False(t, b.Callable())

	n, err := b.MaturityPeriods()
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}

func TestNewBond_Callable(t *testing.T) {
	terms := validTerms()
	terms.YearsToCall = 4
	terms.CallPrice = 1020

	b, err := NewBond(terms)
	require.NoError(t, err)
	assert.True(t, b.Callable())

	n, err := b.CallPeriods()
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BondTerms)
	}{
		{"zero face value", func(b *BondTerms) { b.FaceValue = 0 }},
		{"negative coupon", func(b *BondTerms) { b.CouponRate = -1 }},
		{"zero frequency", func(b *BondTerms) { b.PaymentsPerYear = 0 }},
		{"zero maturity", func(b *BondTerms) { b.YearsToMaturity = 0 }},
		{"fractional periods", func(b *BondTerms) { b.YearsToMaturity = 1.3 }},
		{"call after maturity", func(b *BondTerms) { b.YearsToCall = 12; b.CallPrice = 1020 }},
		{"call without price", func(b *BondTerms) { b.YearsToCall = 4 }},
		{"call price without date", func(b *BondTerms) { b.CallPrice = 1020 }},
		{"fractional call periods", func(b *BondTerms) { b.YearsToCall = 2.3; b.CallPrice = 1020 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			terms := validTerms()
			tc.mutate(&terms)
			_, err := NewBond(terms)
			assert.Error(t, err)
		})
	}
}

func TestPeriodCount(t *testing.T) {
	n, err := PeriodCount(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	// Half-years are whole periods at semi-annual frequency.
	n, err = PeriodCount(2.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	// Monthly frequency tolerates the float representation of 1/12 steps.
	n, err = PeriodCount(1.0/12*7, 12)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = PeriodCount(1.3, 2)
	assert.Error(t, err)

	_, err = PeriodCount(0.25, 2)
	assert.Error(t, err)
}

func TestCouponPerPeriod_ZeroCoupon(t *testing.T) {
	terms := validTerms()
	terms.CouponRate = 0
	b, err := NewBond(terms)
	require.NoError(t, err)
	assert.Zero(t, b.CouponPerPeriod())
}
