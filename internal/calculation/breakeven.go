package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// CumulativeCrossoverResult describes the first point where the hybrid
// scenario's cumulative income pulls ahead of the primary scenario's. The two
// run level through the accumulation phase (the benefit is counted as income
// in both), so the crossover marks the first month a withdrawal payout
// actually lands.
type CumulativeCrossoverResult struct {
	// MonthIndex is the 0-based month in which the crossover occurs.
	MonthIndex int `json:"month_index"`

	// Age is the fractional age at the start of the crossover month.
	Age decimal.Decimal `json:"age"`

	// Fraction (0..1) of the month at which the cumulative difference
	// crosses zero, by linear interpolation over the month's income.
	Fraction decimal.Decimal `json:"fraction_of_month"`

	// CumulativeAmount is the primary scenario's cumulative income at the
	// crossover point.
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`
}

// CalculateCumulativeCrossover finds the first month (if any) where the
// hybrid scenario's cumulative income exceeds the primary scenario's. Returns
// nil, nil when the two never diverge (e.g. a zero corpus never pays out).
func CalculateCumulativeCrossover(records []domain.MonthlyRecord) (*CumulativeCrossoverResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("projection is empty")
	}

	prevDiff := decimal.Zero
	for i := range records {
		rec := &records[i]
		currDiff := rec.HybridCumulativeIncome.Sub(rec.PrimaryCumulativeIncome)

		if currDiff.IsPositive() {
			// Interpolate within the month: diff(t) = prevDiff + t*(currDiff-prevDiff).
			denom := currDiff.Sub(prevDiff)
			t := decimal.Zero
			if !denom.IsZero() {
				t = prevDiff.Neg().Div(denom)
			}
			if t.IsNegative() {
				t = decimal.Zero
			} else if t.GreaterThan(decimal.NewFromInt(1)) {
				t = decimal.NewFromInt(1)
			}

			prevCumulative := rec.PrimaryCumulativeIncome.Sub(rec.PrimaryMonthlyIncome)
			cumulativeAt := prevCumulative.Add(rec.PrimaryMonthlyIncome.Mul(t))

			return &CumulativeCrossoverResult{
				MonthIndex:       rec.MonthIndex,
				Age:              rec.Age,
				Fraction:         t,
				CumulativeAmount: cumulativeAt,
			}, nil
		}

		prevDiff = currDiff
	}

	// The hybrid scenario never pulls ahead.
	return nil, nil
}
