package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testParams := "current_age: 40\n" +
		"policy_end_age: 85\n" +
		"monthly_benefit: 10000\n" +
		"accumulation_years: 12\n" +
		"accumulation_annual_rate: 0.15\n" +
		"decumulation_annual_growth_rate: 0.15\n" +
		"initial_withdrawal_rate: 0.12\n" +
		"payout_growth_rate: 0.05\n"

	tmpfile := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte(testParams), 0644))

	parser := NewInputParser()
	params, err := parser.LoadFromFile(tmpfile)

	require.NoError(t, err)
	require.NotNil(t, params)
	assert.Equal(t, 40, params.CurrentAge)
	assert.Equal(t, 85, params.PolicyEndAge)
	assert.Equal(t, 12, params.AccumulationYears)
	assert.True(t, params.MonthlyBenefit.Equal(decimal.NewFromInt(10000)))
	assert.True(t, params.AccumulationAnnualRate.Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, params.PayoutGrowthRate.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, 540, params.TotalMonths())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte("current_age: [not a number"), 0644))

	parser := NewInputParser()
	_, err := parser.LoadFromFile(tmpfile)
	assert.Error(t, err)
}

func TestValidateParameters(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*domain.PolicyParameters)
		wantErr string
	}{
		{"too young", func(p *domain.PolicyParameters) { p.CurrentAge = 19 }, "current age"},
		{"too old", func(p *domain.PolicyParameters) { p.CurrentAge = 71 }, "current age"},
		{"end age not after current", func(p *domain.PolicyParameters) { p.PolicyEndAge = 40 }, "policy end age"},
		{"end age beyond bound", func(p *domain.PolicyParameters) { p.PolicyEndAge = 120 }, "policy end age"},
		{"zero benefit", func(p *domain.PolicyParameters) { p.MonthlyBenefit = decimal.Zero }, "monthly benefit"},
		{"benefit too large", func(p *domain.PolicyParameters) { p.MonthlyBenefit = decimal.NewFromInt(200000) }, "monthly benefit"},
		{"negative accumulation", func(p *domain.PolicyParameters) { p.AccumulationYears = -3 }, "accumulation years"},
		{"accumulation exceeds term", func(p *domain.PolicyParameters) { p.AccumulationYears = 60 }, "accumulation duration"},
		{"negative rate", func(p *domain.PolicyParameters) { p.DecumulationAnnualGrowthRate = decimal.NewFromFloat(-0.05) }, "decumulation annual growth rate"},
		{"rate above one", func(p *domain.PolicyParameters) { p.PayoutGrowthRate = decimal.NewFromFloat(1.1) }, "payout growth rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := parser.CreateExampleParameters()
			tc.mutate(params)
			err := parser.ValidateParameters(params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("example parameters are valid", func(t *testing.T) {
		assert.NoError(t, parser.ValidateParameters(parser.CreateExampleParameters()))
	})
}

func TestSaveParameters_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	params := parser.CreateExampleParameters()

	tmpfile := filepath.Join(t.TempDir(), "roundtrip.yaml")
	require.NoError(t, SaveParameters(params, tmpfile))

	loaded, err := parser.LoadFromFile(tmpfile)
	require.NoError(t, err)

	assert.Equal(t, params.CurrentAge, loaded.CurrentAge)
	assert.Equal(t, params.PolicyEndAge, loaded.PolicyEndAge)
	assert.Equal(t, params.AccumulationYears, loaded.AccumulationYears)
	assert.True(t, loaded.MonthlyBenefit.Equal(params.MonthlyBenefit))
	assert.True(t, loaded.AccumulationAnnualRate.Equal(params.AccumulationAnnualRate))
	assert.True(t, loaded.DecumulationAnnualGrowthRate.Equal(params.DecumulationAnnualGrowthRate))
	assert.True(t, loaded.InitialWithdrawalRate.Equal(params.InitialWithdrawalRate))
	assert.True(t, loaded.PayoutGrowthRate.Equal(params.PayoutGrowthRate))
}
