package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleComparison(t))
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "HYBRID POLICY ANALYSIS")
	assert.Contains(t, text, "KEY METRICS")
	assert.Contains(t, text, "FIRST 24 MONTHS")
	assert.Contains(t, text, "Withdrawals begin:  age 41")
	assert.Contains(t, text, "Hybrid pulls ahead: month 12")
}

func TestConsoleFormatter_EmptyProjection(t *testing.T) {
	comparison := &domain.PolicyComparison{
		Parameters: domain.PolicyParameters{CurrentAge: 40, PolicyEndAge: 40},
	}
	out, err := ConsoleFormatter{}.Format(comparison)
	require.NoError(t, err)
	assert.Contains(t, string(out), "No months to report")
}

func TestCSVSummarizer(t *testing.T) {
	comparison := sampleComparison(t)
	out, err := CSVSummarizer{}.Format(comparison)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Scenario,TotalIncome,FinalCorpus,AdditionalIncome,AdvantagePercent,TransitionAge", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], comparison.Primary.Name+","))
	assert.True(t, strings.HasPrefix(lines[2], comparison.Hybrid.Name+","))
	assert.True(t, strings.HasSuffix(lines[1], ",41"))
}

func TestCSVDetailedExporter(t *testing.T) {
	comparison := sampleComparison(t)
	out, err := CSVDetailedExporter{}.Format(comparison)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 1+len(comparison.Records))
	assert.True(t, strings.HasPrefix(lines[0], "MonthIndex,Age,PolicyYear"))
	assert.True(t, strings.HasPrefix(lines[1], "0,"))
}

func TestJSONFormatter(t *testing.T) {
	comparison := sampleComparison(t)
	out, err := JSONFormatter{}.Format(comparison)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "parameters")
	assert.Contains(t, decoded, "records")
	assert.Contains(t, decoded, "primary")
	assert.Contains(t, decoded, "hybrid")
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(sampleComparison(t))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Hybrid Policy Analysis")
	assert.Contains(t, html, `<canvas id="income"`)
	assert.Contains(t, html, `<canvas id="corpus"`)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "txt", extensionFor("console"))
	assert.Equal(t, "csv", extensionFor("csv"))
	assert.Equal(t, "csv", extensionFor("detailed-csv"))
	assert.Equal(t, "json", extensionFor("json"))
	assert.Equal(t, "html", extensionFor("html"))
}
