package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/policy-analyzer/internal/calculation"
	"github.com/hpgo/policy-analyzer/internal/domain"
)

func main() {
	engine := calculation.NewProjectionEngine()

	params := &domain.PolicyParameters{
		CurrentAge:                   40,
		PolicyEndAge:                 85,
		MonthlyBenefit:               decimal.NewFromInt(10000),
		AccumulationYears:            12,
		AccumulationAnnualRate:       decimal.NewFromFloat(0.15),
		DecumulationAnnualGrowthRate: decimal.NewFromFloat(0.15),
		InitialWithdrawalRate:        decimal.NewFromFloat(0.12),
		PayoutGrowthRate:             decimal.NewFromFloat(0.05),
	}

	records, err := engine.Project(params)
	if err != nil {
		fmt.Println("projection failed:", err)
		return
	}

	fmt.Printf("%5s  %6s  %14s  %12s  %12s  %14s\n",
		"Month", "Age", "AccumBalance", "Payout", "Corpus", "HybridCum")
	for i := 0; i < len(records) && i < 24; i++ {
		r := &records[i]
		fmt.Printf("%5d  %6s  %14s  %12s  %12s  %14s\n",
			r.MonthIndex, r.Age.StringFixed(2),
			r.AccumulationBalance.StringFixed(2),
			r.HybridPayout.StringFixed(2),
			r.DecumulationBalance.StringFixed(2),
			r.HybridCumulativeIncome.StringFixed(2))
	}

	// jump to the transition months
	acc := params.AccumulationMonths()
	fmt.Println("...")
	for i := acc - 1; i <= acc+2 && i < len(records); i++ {
		r := &records[i]
		fmt.Printf("%5d  %6s  %14s  %12s  %12s  %14s\n",
			r.MonthIndex, r.Age.StringFixed(2),
			r.AccumulationBalance.StringFixed(2),
			r.HybridPayout.StringFixed(2),
			r.DecumulationBalance.StringFixed(2),
			r.HybridCumulativeIncome.StringFixed(2))
	}
}
