package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hpgo/policy-analyzer/internal/calculation"
	"github.com/hpgo/policy-analyzer/internal/domain"
)

// previewMonths is how many leading months the console report tabulates;
// two policy years is enough to see the accumulation mechanics.
const previewMonths = 24

// ConsoleFormatter renders the key-metrics summary and a short month table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PolicyComparison) ([]byte, error) {
	var buf bytes.Buffer

	p := results.Parameters
	fmt.Fprintln(&buf, "HYBRID POLICY ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Policy term:        age %d to %d (%d months)\n", p.CurrentAge, p.PolicyEndAge, p.TotalMonths())
	fmt.Fprintf(&buf, "Monthly benefit:    %s\n", FormatCurrency(p.MonthlyBenefit))
	fmt.Fprintf(&buf, "Withdrawals begin:  age %d\n", results.TransitionAge)
	fmt.Fprintln(&buf)

	if results.IsEmpty() {
		fmt.Fprintln(&buf, "No months to report: the policy term is empty.")
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf, "KEY METRICS")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "%-18s Total Income %-15s Final Corpus %s\n",
		results.Primary.Name+":", FormatCurrency(results.Primary.TotalIncome), FormatCurrency(results.Primary.FinalBalance))
	fmt.Fprintf(&buf, "%-18s Total Income %-15s Final Corpus %s\n",
		results.Hybrid.Name+":", FormatCurrency(results.Hybrid.TotalIncome), FormatCurrency(results.Hybrid.FinalBalance))
	fmt.Fprintf(&buf, "Hybrid Advantage:  %s (%s)\n",
		FormatCurrency(results.AdditionalHybridIncome), FormatPercentage(results.AdvantagePercent))

	if results.CorpusIsDepleted() {
		idx := *results.DepletionMonthIndex
		fmt.Fprintf(&buf, "Corpus depleted:   month %d (age %s)\n", idx, results.Records[idx].Age.StringFixed(1))
	} else {
		fmt.Fprintln(&buf, "Corpus depleted:   never (outlasts the policy term)")
	}

	if crossover, err := calculation.CalculateCumulativeCrossover(results.Records); err == nil && crossover != nil {
		fmt.Fprintf(&buf, "Hybrid pulls ahead: month %d (age %s)\n", crossover.MonthIndex, crossover.Age.StringFixed(1))
	}
	fmt.Fprintln(&buf)

	writeMonthPreview(&buf, results.Records)

	return buf.Bytes(), nil
}

func writeMonthPreview(buf *bytes.Buffer, records []domain.MonthlyRecord) {
	n := len(records)
	if n > previewMonths {
		n = previewMonths
	}

	fmt.Fprintf(buf, "FIRST %d MONTHS\n", n)
	fmt.Fprintln(buf, strings.Repeat("-", 108))
	fmt.Fprintf(buf, "%5s %6s %12s %14s %14s %12s %14s %14s\n",
		"Month", "Age", "Benefit", "AccumBalance", "Payout", "Corpus", "HybridIncome", "HybridCum")
	for i := 0; i < n; i++ {
		rec := &records[i]
		fmt.Fprintf(buf, "%5d %6s %12s %14s %14s %12s %14s %14s\n",
			rec.MonthIndex,
			rec.Age.StringFixed(2),
			rec.HybridBenefitReceived.StringFixed(2),
			rec.AccumulationBalance.StringFixed(2),
			rec.HybridPayout.StringFixed(2),
			rec.DecumulationBalance.StringFixed(2),
			rec.HybridTotalMonthlyIncome.StringFixed(2),
			rec.HybridCumulativeIncome.StringFixed(2))
	}
	if len(records) > n {
		fmt.Fprintf(buf, "... %d further months in the detailed CSV report\n", len(records)-n)
	}
}
