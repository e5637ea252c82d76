package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyRecord is a flat snapshot of both scenarios at the end of one month.
// Records are emitted in month order, one per month of the policy term.
type MonthlyRecord struct {
	MonthIndex        int             `json:"month_index"`
	Age               decimal.Decimal `json:"age"`
	PolicyYear        int             `json:"policy_year"`
	MonthInPolicyYear int             `json:"month_in_policy_year"`

	// Primary scenario: the fixed benefit with no investment component.
	PrimaryMonthlyIncome    decimal.Decimal `json:"primary_monthly_income"`
	PrimaryCumulativeIncome decimal.Decimal `json:"primary_cumulative_income"`

	// Hybrid scenario components.
	HybridBenefitReceived decimal.Decimal `json:"hybrid_benefit_received"`
	HybridContribution    decimal.Decimal `json:"hybrid_contribution"`
	// AccumulationBalance is the invested balance at end of month. It stops
	// changing once the withdrawal phase begins.
	AccumulationBalance decimal.Decimal `json:"accumulation_balance"`
	HybridPayout        decimal.Decimal `json:"hybrid_payout"`
	// DecumulationBalance is the withdrawal-phase balance at end of month,
	// zero during accumulation and never negative.
	DecumulationBalance      decimal.Decimal `json:"decumulation_balance"`
	HybridTotalMonthlyIncome decimal.Decimal `json:"hybrid_total_monthly_income"`
	HybridCumulativeIncome   decimal.Decimal `json:"hybrid_cumulative_income"`

	// WithdrawalYear counts withdrawal-phase years, starting at 1 in the
	// transition month. Zero during accumulation.
	WithdrawalYear int `json:"withdrawal_year"`
	// TargetMonthlyPayout is the contracted withdrawal for the current
	// withdrawal year. Zero during accumulation.
	TargetMonthlyPayout decimal.Decimal `json:"target_monthly_payout"`
}

// InWithdrawalPhase reports whether this record belongs to the withdrawal
// phase of the hybrid scenario.
func (mr *MonthlyRecord) InWithdrawalPhase() bool {
	return mr.WithdrawalYear > 0
}

// IsDepleted reports whether the withdrawal-phase balance has run out.
func (mr *MonthlyRecord) IsDepleted() bool {
	return mr.InWithdrawalPhase() && mr.DecumulationBalance.LessThanOrEqual(decimal.Zero)
}

// ScenarioSummary provides final totals for one payout scenario.
type ScenarioSummary struct {
	Name         string          `json:"name"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

// AverageMonthlyIncome returns total income spread over the term. Returns
// zero for an empty term.
func (ss *ScenarioSummary) AverageMonthlyIncome(totalMonths int) decimal.Decimal {
	if totalMonths <= 0 {
		return decimal.Zero
	}
	return ss.TotalIncome.Div(decimal.NewFromInt(int64(totalMonths)))
}

// PolicyComparison is the full result of one analysis run: the input
// parameters, the month-by-month projection, and derived comparison metrics.
type PolicyComparison struct {
	Parameters PolicyParameters `json:"parameters"`
	Records    []MonthlyRecord  `json:"records"`

	Primary ScenarioSummary `json:"primary"`
	Hybrid  ScenarioSummary `json:"hybrid"`

	// AdditionalHybridIncome is hybrid total income minus primary total.
	AdditionalHybridIncome decimal.Decimal `json:"additional_hybrid_income"`
	// AdvantagePercent is the additional income as a percentage of the
	// primary total; zero when the primary total is zero.
	AdvantagePercent decimal.Decimal `json:"advantage_percent"`

	// TransitionAge is the age at which withdrawals begin.
	TransitionAge int `json:"transition_age"`
	// DepletionMonthIndex is the first withdrawal-phase month whose ending
	// balance is zero, or nil if the balance outlasts the term.
	DepletionMonthIndex *int `json:"depletion_month_index,omitempty"`
}

// IsEmpty reports whether the projection produced no months.
func (pc *PolicyComparison) IsEmpty() bool {
	return len(pc.Records) == 0
}

// FinalRecord returns the last monthly record, or nil for an empty projection.
func (pc *PolicyComparison) FinalRecord() *MonthlyRecord {
	if len(pc.Records) == 0 {
		return nil
	}
	return &pc.Records[len(pc.Records)-1]
}

// CorpusIsDepleted reports whether the hybrid balance ran out before the end
// of the term.
func (pc *PolicyComparison) CorpusIsDepleted() bool {
	return pc.DepletionMonthIndex != nil
}
