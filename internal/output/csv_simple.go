package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PolicyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "TotalIncome", "FinalCorpus", "AdditionalIncome", "AdvantagePercent", "TransitionAge"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	primary := []string{
		results.Primary.Name,
		results.Primary.TotalIncome.StringFixed(2),
		results.Primary.FinalBalance.StringFixed(2),
		"0.00",
		"0.00",
		strconv.Itoa(results.TransitionAge),
	}
	if err := w.Write(primary); err != nil {
		return nil, err
	}

	hybrid := []string{
		results.Hybrid.Name,
		results.Hybrid.TotalIncome.StringFixed(2),
		results.Hybrid.FinalBalance.StringFixed(2),
		results.AdditionalHybridIncome.StringFixed(2),
		results.AdvantagePercent.StringFixed(2),
		strconv.Itoa(results.TransitionAge),
	}
	if err := w.Write(hybrid); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
