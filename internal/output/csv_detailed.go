package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// CSVDetailedExporter writes the full month-by-month data table, one row per
// month, suitable for inspection in a spreadsheet.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PolicyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"MonthIndex", "Age", "PolicyYear", "MonthInPolicyYear",
		"Primary_MonthlyIncome", "Primary_CumulativeIncome",
		"Hybrid_BenefitReceived", "Hybrid_Contribution", "Hybrid_AccumulationBalance",
		"Hybrid_Payout", "Hybrid_DecumulationBalance",
		"Hybrid_TotalMonthlyIncome", "Hybrid_CumulativeIncome",
		"Withdrawal_Year", "Target_Monthly_Payout",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range results.Records {
		rec := &results.Records[i]
		row := []string{
			strconv.Itoa(rec.MonthIndex),
			rec.Age.StringFixed(4),
			strconv.Itoa(rec.PolicyYear),
			strconv.Itoa(rec.MonthInPolicyYear),
			rec.PrimaryMonthlyIncome.StringFixed(2),
			rec.PrimaryCumulativeIncome.StringFixed(2),
			rec.HybridBenefitReceived.StringFixed(2),
			rec.HybridContribution.StringFixed(2),
			rec.AccumulationBalance.StringFixed(2),
			rec.HybridPayout.StringFixed(2),
			rec.DecumulationBalance.StringFixed(2),
			rec.HybridTotalMonthlyIncome.StringFixed(2),
			rec.HybridCumulativeIncome.StringFixed(2),
			strconv.Itoa(rec.WithdrawalYear),
			rec.TargetMonthlyPayout.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
