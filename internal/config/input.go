package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// Quote bounds for the parameter surface. The engine only enforces structural
// preconditions; legal scalar ranges are the parameter source's contract.
var (
	minCurrentAge  = 20
	maxCurrentAge  = 70
	maxPolicyAge   = 100
	maxBenefit     = decimal.NewFromInt(100000)
	rateUpperBound = decimal.NewFromInt(1)
)

// InputParser handles parsing of policy parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads policy parameters from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PolicyParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.PolicyParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParameters validates the loaded parameters against the legal quote
// ranges, so the engine receives scalars it can trust.
func (ip *InputParser) ValidateParameters(params *domain.PolicyParameters) error {
	if params.CurrentAge < minCurrentAge || params.CurrentAge > maxCurrentAge {
		return fmt.Errorf("current age must be between %d and %d, got %d", minCurrentAge, maxCurrentAge, params.CurrentAge)
	}
	if params.PolicyEndAge <= params.CurrentAge {
		return fmt.Errorf("policy end age (%d) must be greater than current age (%d)", params.PolicyEndAge, params.CurrentAge)
	}
	if params.PolicyEndAge > maxPolicyAge {
		return fmt.Errorf("policy end age cannot exceed %d, got %d", maxPolicyAge, params.PolicyEndAge)
	}
	if params.MonthlyBenefit.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly benefit must be positive, got %s", params.MonthlyBenefit)
	}
	if params.MonthlyBenefit.GreaterThan(maxBenefit) {
		return fmt.Errorf("monthly benefit cannot exceed %s, got %s", maxBenefit, params.MonthlyBenefit)
	}
	if params.AccumulationYears < 0 {
		return fmt.Errorf("accumulation years cannot be negative, got %d", params.AccumulationYears)
	}
	if params.AccumulationMonths() > params.TotalMonths() {
		return fmt.Errorf("accumulation duration (%d years) exceeds the policy term (%d years)",
			params.AccumulationYears, params.PolicyEndAge-params.CurrentAge)
	}

	if err := validateRate("accumulation annual rate", params.AccumulationAnnualRate); err != nil {
		return err
	}
	if err := validateRate("decumulation annual growth rate", params.DecumulationAnnualGrowthRate); err != nil {
		return err
	}
	if err := validateRate("initial withdrawal rate", params.InitialWithdrawalRate); err != nil {
		return err
	}
	if err := validateRate("payout growth rate", params.PayoutGrowthRate); err != nil {
		return err
	}

	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(rateUpperBound) {
		return fmt.Errorf("%s must be a fraction between 0 and 1, got %s", name, rate)
	}
	return nil
}

// SaveParameters writes parameters to a YAML file.
func SaveParameters(params *domain.PolicyParameters, filename string) error {
	b, err := yaml.Marshal(params)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleParameters returns the default quote: a 40 year old investing
// a 10k monthly benefit for 12 years at 15%, then withdrawing 12% initially
// with 5% annual payout growth.
func (ip *InputParser) CreateExampleParameters() *domain.PolicyParameters {
	return &domain.PolicyParameters{
		CurrentAge:                   40,
		PolicyEndAge:                 85,
		MonthlyBenefit:               decimal.NewFromInt(10000),
		AccumulationYears:            12,
		AccumulationAnnualRate:       decimal.NewFromFloat(0.15),
		DecumulationAnnualGrowthRate: decimal.NewFromFloat(0.15),
		InitialWithdrawalRate:        decimal.NewFromFloat(0.12),
		PayoutGrowthRate:             decimal.NewFromFloat(0.05),
	}
}
