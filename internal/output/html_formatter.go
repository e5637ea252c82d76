package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"

	calc "github.com/hpgo/policy-analyzer/internal/calculation"
	"github.com/hpgo/policy-analyzer/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with the key metrics,
// chart data, and the month table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"fixed": func(d decimal.Decimal, places int) string {
		return d.StringFixed(int32(places))
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.PolicyComparison) ([]byte, error) {
	var buf bytes.Buffer

	// The crossover is advisory; a projection without one renders fine.
	var crossover *calc.CumulativeCrossoverResult
	if co, err := calc.CalculateCumulativeCrossover(results.Records); err == nil && co != nil {
		crossover = co
	}

	data := struct {
		*domain.PolicyComparison
		Charts    *ChartData
		Crossover *calc.CumulativeCrossoverResult
	}{results, BuildChartData(results), crossover}

	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
