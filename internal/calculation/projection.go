package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/policy-analyzer/internal/domain"
	"github.com/hpgo/policy-analyzer/pkg/policyterm"
)

// ErrInvalidParameters is returned when a parameter set cannot produce a
// well-formed projection. The engine rejects before simulating rather than
// emitting a corrupted partial sequence.
var ErrInvalidParameters = errors.New("invalid policy parameters")

// MaxProjectionMonths bounds the projection length (100 years of months).
// Guards against runaway terms from unvalidated input.
const MaxProjectionMonths = 1200

// hybridPhase is the state of the hybrid scenario's two-phase machine.
type hybridPhase int

const (
	phaseAccumulating hybridPhase = iota
	phaseWithdrawing
)

var one = decimal.NewFromInt(1)

// Project runs the month-by-month simulation for both scenarios and returns
// one record per month of the policy term. It is a pure function of params:
// no shared state, deterministic output, safe to call concurrently with
// distinct parameter sets.
func (pe *ProjectionEngine) Project(params *domain.PolicyParameters) ([]domain.MonthlyRecord, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	totalMonths := params.TotalMonths()
	accumulationMonths := params.AccumulationMonths()

	monthlyAccumulationRate := policyterm.MonthlyRate(params.AccumulationAnnualRate)
	monthlyGrowthRate := policyterm.MonthlyRate(params.DecumulationAnnualGrowthRate)

	pe.Logger.Debugf("projecting %d months (%d accumulation)", totalMonths, accumulationMonths)

	records := make([]domain.MonthlyRecord, 0, totalMonths)

	primaryCumulative := decimal.Zero
	accumulationBalance := decimal.Zero
	decumulationBalance := decimal.Zero
	hybridCumulative := decimal.Zero
	targetPayout := decimal.Zero
	lastScheduledPayout := decimal.Zero
	withdrawalYear := 0
	phase := phaseAccumulating

	for m := 0; m < totalMonths; m++ {
		benefit := params.MonthlyBenefit

		// Primary scenario has no phases: the benefit lands every month.
		primaryCumulative = primaryCumulative.Add(benefit)

		contribution := decimal.Zero
		payout := decimal.Zero

		// One-time transition: the final accumulated balance moves to the
		// withdrawal side and the first year's target payout is contracted.
		if phase == phaseAccumulating && m == accumulationMonths {
			phase = phaseWithdrawing
			decumulationBalance = accumulationBalance
			withdrawalYear = 1
			annualPayout := decumulationBalance.Mul(params.InitialWithdrawalRate)
			targetPayout = annualPayout.Div(decimal.NewFromInt(12))
			lastScheduledPayout = targetPayout
		}

		switch phase {
		case phaseAccumulating:
			// Interest credits before the new contribution lands.
			contribution = benefit
			accumulationBalance = accumulationBalance.Add(accumulationBalance.Mul(monthlyAccumulationRate))
			accumulationBalance = accumulationBalance.Add(contribution)

		case phaseWithdrawing:
			// Each anniversary after the transition escalates the target
			// payout; the transition month itself does not.
			if policyterm.IsWithdrawalAnniversary(m, accumulationMonths) {
				withdrawalYear++
				targetPayout = lastScheduledPayout.Mul(one.Add(params.PayoutGrowthRate))
				lastScheduledPayout = targetPayout
			}

			if decumulationBalance.LessThanOrEqual(decimal.Zero) {
				// Depletion is terminal: growth and escalation keep running
				// but nothing is ever paid again.
				decumulationBalance = decimal.Zero
			} else {
				grown := decumulationBalance.Add(decumulationBalance.Mul(monthlyGrowthRate))
				if targetPayout.GreaterThanOrEqual(grown) {
					// Not enough to meet the target: pay out whatever is
					// left and close the balance.
					payout = grown
					decumulationBalance = decimal.Zero
				} else {
					payout = targetPayout
					decumulationBalance = grown.Sub(payout)
				}
			}
			if decumulationBalance.IsNegative() {
				decumulationBalance = decimal.Zero
			}
		}

		hybridIncome := benefit.Add(payout)
		hybridCumulative = hybridCumulative.Add(hybridIncome)

		records = append(records, domain.MonthlyRecord{
			MonthIndex:               m,
			Age:                      policyterm.AgeAtMonth(params.CurrentAge, m),
			PolicyYear:               policyterm.PolicyYear(m),
			MonthInPolicyYear:        policyterm.MonthInPolicyYear(m),
			PrimaryMonthlyIncome:     benefit,
			PrimaryCumulativeIncome:  primaryCumulative,
			HybridBenefitReceived:    benefit,
			HybridContribution:       contribution,
			AccumulationBalance:      accumulationBalance,
			HybridPayout:             payout,
			DecumulationBalance:      decumulationBalance,
			HybridTotalMonthlyIncome: hybridIncome,
			HybridCumulativeIncome:   hybridCumulative,
			WithdrawalYear:           withdrawalYear,
			TargetMonthlyPayout:      targetPayout,
		})
	}

	return records, nil
}

// ValidateParameters checks the structural preconditions the engine depends
// on. Range legality of individual scalars is the parameter source's job;
// this rejects anything that would corrupt or unbound the simulation.
func ValidateParameters(params *domain.PolicyParameters) error {
	if params == nil {
		return fmt.Errorf("%w: nil parameters", ErrInvalidParameters)
	}

	totalMonths := params.TotalMonths()
	if totalMonths <= 0 {
		return fmt.Errorf("%w: policy end age (%d) must be greater than current age (%d)",
			ErrInvalidParameters, params.PolicyEndAge, params.CurrentAge)
	}
	if totalMonths > MaxProjectionMonths {
		return fmt.Errorf("%w: policy term of %d months exceeds the maximum of %d",
			ErrInvalidParameters, totalMonths, MaxProjectionMonths)
	}
	if params.AccumulationYears < 0 {
		return fmt.Errorf("%w: accumulation duration cannot be negative, got %d years",
			ErrInvalidParameters, params.AccumulationYears)
	}
	if params.AccumulationMonths() > totalMonths {
		return fmt.Errorf("%w: accumulation phase (%d months) exceeds the policy term (%d months)",
			ErrInvalidParameters, params.AccumulationMonths(), totalMonths)
	}
	if params.MonthlyBenefit.IsNegative() {
		return fmt.Errorf("%w: monthly benefit cannot be negative, got %s",
			ErrInvalidParameters, params.MonthlyBenefit)
	}

	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"accumulation annual rate", params.AccumulationAnnualRate},
		{"decumulation annual growth rate", params.DecumulationAnnualGrowthRate},
		{"initial withdrawal rate", params.InitialWithdrawalRate},
		{"payout growth rate", params.PayoutGrowthRate},
	}
	for _, r := range rates {
		if r.rate.IsNegative() || r.rate.GreaterThan(one) {
			return fmt.Errorf("%w: %s must be a fraction between 0 and 1, got %s",
				ErrInvalidParameters, r.name, r.rate)
		}
	}

	return nil
}
