package domain

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/policy-analyzer/pkg/policyterm"
)

// PolicyParameters holds the immutable scalar inputs for one simulation run.
// Rates are annual fractions (0.15 means 15% per year); the engine derives
// monthly rates by simple division.
type PolicyParameters struct {
	// CurrentAge is the policyholder's age in whole years at month 0.
	CurrentAge int `yaml:"current_age" json:"current_age"`

	// PolicyEndAge is the age at which the policy term ends. Must be
	// greater than CurrentAge.
	PolicyEndAge int `yaml:"policy_end_age" json:"policy_end_age"`

	// MonthlyBenefit is the survival benefit paid every month of the term,
	// in both scenarios, regardless of phase.
	MonthlyBenefit decimal.Decimal `yaml:"monthly_benefit" json:"monthly_benefit"`

	// AccumulationYears is the length of the investment phase of the hybrid
	// scenario. Zero means withdrawals begin immediately.
	AccumulationYears int `yaml:"accumulation_years" json:"accumulation_years"`

	// AccumulationAnnualRate is the annual return credited to the invested
	// benefit during the accumulation phase.
	AccumulationAnnualRate decimal.Decimal `yaml:"accumulation_annual_rate" json:"accumulation_annual_rate"`

	// DecumulationAnnualGrowthRate is the annual growth applied to the
	// remaining balance during the withdrawal phase.
	DecumulationAnnualGrowthRate decimal.Decimal `yaml:"decumulation_annual_growth_rate" json:"decumulation_annual_growth_rate"`

	// InitialWithdrawalRate sets the first withdrawal year's target payout:
	// transferred balance * rate / 12, applied once at the transition.
	InitialWithdrawalRate decimal.Decimal `yaml:"initial_withdrawal_rate" json:"initial_withdrawal_rate"`

	// PayoutGrowthRate escalates the target payout at each anniversary of
	// the withdrawal phase.
	PayoutGrowthRate decimal.Decimal `yaml:"payout_growth_rate" json:"payout_growth_rate"`
}

// TotalMonths returns the number of months in the policy term.
func (p *PolicyParameters) TotalMonths() int {
	return policyterm.MonthsBetween(p.CurrentAge, p.PolicyEndAge)
}

// AccumulationMonths returns the length of the accumulation phase in months.
func (p *PolicyParameters) AccumulationMonths() int {
	return p.AccumulationYears * 12
}

// TransitionAge returns the age at which withdrawals begin.
func (p *PolicyParameters) TransitionAge() int {
	return p.CurrentAge + p.AccumulationYears
}
