package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// Scenario display names used in summaries and reports.
const (
	PrimaryScenarioName = "Primary Policy Only"
	HybridScenarioName  = "Hybrid Investment Policy"
)

var hundred = decimal.NewFromInt(100)

// ProjectionEngine runs the payout simulation and derives comparison metrics.
// The zero value is not usable; construct with NewProjectionEngine.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunComparison projects both scenarios and derives the comparison metrics a
// report consumer needs: final totals, the hybrid advantage, transition age,
// and the depletion month if the balance ran out.
func (pe *ProjectionEngine) RunComparison(ctx context.Context, params *domain.PolicyParameters) (*domain.PolicyComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := pe.Project(params)
	if err != nil {
		return nil, fmt.Errorf("projection failed: %w", err)
	}

	comparison := &domain.PolicyComparison{
		Parameters:    *params,
		Records:       records,
		Primary:       domain.ScenarioSummary{Name: PrimaryScenarioName},
		Hybrid:        domain.ScenarioSummary{Name: HybridScenarioName},
		TransitionAge: params.TransitionAge(),
	}

	// An empty projection is degenerate but valid; every metric stays zero.
	last := comparison.FinalRecord()
	if last == nil {
		pe.Logger.Warnf("projection produced no months for term %d-%d", params.CurrentAge, params.PolicyEndAge)
		return comparison, nil
	}

	comparison.Primary.TotalIncome = last.PrimaryCumulativeIncome
	comparison.Primary.FinalBalance = decimal.Zero
	comparison.Hybrid.TotalIncome = last.HybridCumulativeIncome
	comparison.Hybrid.FinalBalance = last.DecumulationBalance

	comparison.AdditionalHybridIncome = comparison.Hybrid.TotalIncome.Sub(comparison.Primary.TotalIncome)
	if !comparison.Primary.TotalIncome.IsZero() {
		comparison.AdvantagePercent = comparison.AdditionalHybridIncome.
			Div(comparison.Primary.TotalIncome).Mul(hundred)
	}

	for i := range records {
		if records[i].IsDepleted() {
			idx := records[i].MonthIndex
			comparison.DepletionMonthIndex = &idx
			pe.Logger.Debugf("hybrid balance depleted at month %d (age %s)", idx, records[i].Age)
			break
		}
	}

	return comparison, nil
}
