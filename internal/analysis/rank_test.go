package analysis

import (
	"testing"

	"bond-yield/internal/model"
	"bond-yield/internal/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_NonCallable(t *testing.T) {
	q := BondQuote{
		Bond: model.BondTerms{
			Name:            "plain",
			FaceValue:       1000,
			CouponRate:      5,
			PaymentsPerYear: 2,
			YearsToMaturity: 10,
		},
		CurrentPrice: 950,
	}

	s, err := Summarize(q, solver.DefaultParams())
	require.NoError(t, err)
	assert.False(t, s.Callable)
	assert.True(t, s.Converged)
	assert.Equal(t, s.YTM, s.YTW)
	assert.Greater(t, s.YTM, 5.0)
}

func TestSummarize_Callable(t *testing.T) {
	q := BondQuote{
		Bond: model.BondTerms{
			Name:            "callable",
			FaceValue:       1000,
			CouponRate:      6,
			PaymentsPerYear: 2,
			YearsToMaturity: 8,
			YearsToCall:     3,
			CallPrice:       1000,
		},
		CurrentPrice: 1040,
	}

	s, err := Summarize(q, solver.DefaultParams())
	require.NoError(t, err)
	assert.True(t, s.Callable)
	assert.True(t, s.Converged)
	assert.Less(t, s.YTW, s.YTM, "premium par-call bond is worst at the call")
	assert.Equal(t, s.YTC, s.YTW)
}

func TestRankByYieldToWorst(t *testing.T) {
	plain := func(name string, price float64) BondQuote {
		return BondQuote{
			Bond: model.BondTerms{
				Name:            name,
				FaceValue:       1000,
				CouponRate:      5,
				PaymentsPerYear: 2,
				YearsToMaturity: 10,
			},
			CurrentPrice: price,
		}
	}

	// Lower price, higher yield: cheap should rank first.
	ranked := RankByYieldToWorst([]BondQuote{
		plain("par", 1000),
		plain("cheap", 900),
		plain("rich", 1100),
	}, solver.DefaultParams())

	require.Len(t, ranked, 3)
	assert.Equal(t, "cheap", ranked[0].Name)
	assert.Equal(t, "par", ranked[1].Name)
	assert.Equal(t, "rich", ranked[2].Name)
	assert.Greater(t, ranked[0].YTW, ranked[1].YTW)
	assert.Greater(t, ranked[1].YTW, ranked[2].YTW)
}

func TestRankByYieldToWorst_SkipsInvalid(t *testing.T) {
	good := BondQuote{
		Bond: model.BondTerms{
			Name:            "good",
			FaceValue:       1000,
			CouponRate:      5,
			PaymentsPerYear: 2,
			YearsToMaturity: 10,
		},
		CurrentPrice: 950,
	}
	bad := good
	bad.Bond.Name = "bad"
	bad.CurrentPrice = 0

	ranked := RankByYieldToWorst([]BondQuote{bad, good}, solver.DefaultParams())
	require.Len(t, ranked, 1)
	assert.Equal(t, "good", ranked[0].Name)
}
