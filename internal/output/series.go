package output

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// ChartData holds the time series a charting consumer needs, extracted from
// the projection in plot-ready parallel slices. The withdrawal-phase series
// are restricted to months at or after the transition so a stacked breakdown
// does not render a flat zero band through the accumulation years.
type ChartData struct {
	Ages                    []decimal.Decimal `json:"ages"`
	PrimaryMonthlyIncome    []decimal.Decimal `json:"primary_monthly_income"`
	HybridMonthlyIncome     []decimal.Decimal `json:"hybrid_monthly_income"`
	PrimaryCumulativeIncome []decimal.Decimal `json:"primary_cumulative_income"`
	HybridCumulativeIncome  []decimal.Decimal `json:"hybrid_cumulative_income"`
	AccumulationBalance     []decimal.Decimal `json:"accumulation_balance"`

	// Withdrawal-phase series, aligned with WithdrawalAges.
	WithdrawalAges      []decimal.Decimal `json:"withdrawal_ages"`
	DecumulationBalance []decimal.Decimal `json:"decumulation_balance"`
	BenefitComponent    []decimal.Decimal `json:"benefit_component"`
	PayoutComponent     []decimal.Decimal `json:"payout_component"`

	// TransitionAge marks where a chart should draw the phase boundary.
	TransitionAge int `json:"transition_age"`
}

// BuildChartData extracts chart series from a comparison. An empty projection
// yields empty series, never nil panics.
func BuildChartData(comparison *domain.PolicyComparison) *ChartData {
	n := len(comparison.Records)
	cd := &ChartData{
		Ages:                    make([]decimal.Decimal, 0, n),
		PrimaryMonthlyIncome:    make([]decimal.Decimal, 0, n),
		HybridMonthlyIncome:     make([]decimal.Decimal, 0, n),
		PrimaryCumulativeIncome: make([]decimal.Decimal, 0, n),
		HybridCumulativeIncome:  make([]decimal.Decimal, 0, n),
		AccumulationBalance:     make([]decimal.Decimal, 0, n),
		TransitionAge:           comparison.TransitionAge,
	}

	for i := range comparison.Records {
		rec := &comparison.Records[i]
		cd.Ages = append(cd.Ages, rec.Age)
		cd.PrimaryMonthlyIncome = append(cd.PrimaryMonthlyIncome, rec.PrimaryMonthlyIncome)
		cd.HybridMonthlyIncome = append(cd.HybridMonthlyIncome, rec.HybridTotalMonthlyIncome)
		cd.PrimaryCumulativeIncome = append(cd.PrimaryCumulativeIncome, rec.PrimaryCumulativeIncome)
		cd.HybridCumulativeIncome = append(cd.HybridCumulativeIncome, rec.HybridCumulativeIncome)
		cd.AccumulationBalance = append(cd.AccumulationBalance, rec.AccumulationBalance)

		if rec.InWithdrawalPhase() {
			cd.WithdrawalAges = append(cd.WithdrawalAges, rec.Age)
			cd.DecumulationBalance = append(cd.DecumulationBalance, rec.DecumulationBalance)
			cd.BenefitComponent = append(cd.BenefitComponent, rec.HybridBenefitReceived)
			cd.PayoutComponent = append(cd.PayoutComponent, rec.HybridPayout)
		}
	}

	return cd
}
