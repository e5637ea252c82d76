package output

import (
	"encoding/json"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// JSONFormatter serializes the policy comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PolicyComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
