package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/policy-analyzer/internal/calculation"
	"github.com/hpgo/policy-analyzer/internal/config"
	"github.com/hpgo/policy-analyzer/internal/output"
)

func TestEndToEndProjection(t *testing.T) {
	parser := config.NewInputParser()
	params, err := parser.LoadFromFile("../testdata/example_params.yaml")
	require.NoError(t, err)
	require.NotNil(t, params)

	assert.Equal(t, 40, params.CurrentAge)
	assert.Equal(t, 85, params.PolicyEndAge)
	assert.Equal(t, 540, params.TotalMonths())

	engine := calculation.NewProjectionEngine()
	results, err := engine.RunComparison(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, results)

	assert.Len(t, results.Records, 540)
	assert.Equal(t, 52, results.TransitionAge)

	// Primary income over 45 years of a 10k benefit.
	assert.True(t, results.Primary.TotalIncome.Equal(decimal.NewFromInt(5400000)))
	assert.True(t, results.Primary.FinalBalance.IsZero())

	// Hybrid keeps the benefit flowing, so it can never trail the primary.
	assert.True(t, results.Hybrid.TotalIncome.GreaterThanOrEqual(results.Primary.TotalIncome))
	assert.True(t, results.AdditionalHybridIncome.GreaterThanOrEqual(decimal.Zero))
}

func TestEndToEndReports(t *testing.T) {
	parser := config.NewInputParser()
	params, err := parser.LoadFromFile("../testdata/example_params.yaml")
	require.NoError(t, err)

	engine := calculation.NewProjectionEngine()
	results, err := engine.RunComparison(context.Background(), params)
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q", name)
		data, err := f.Format(results)
		require.NoError(t, err, "formatter %q", name)
		assert.NotEmpty(t, data, "formatter %q", name)
	}
}

func TestParameterValidation(t *testing.T) {
	parser := config.NewInputParser()
	params, err := parser.LoadFromFile("../testdata/example_params.yaml")
	require.NoError(t, err)

	assert.NoError(t, parser.ValidateParameters(params))

	params.PolicyEndAge = params.CurrentAge
	assert.Error(t, parser.ValidateParameters(params))
}
