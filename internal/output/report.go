package output

import (
	"fmt"
	"strings"

	"github.com/hpgo/policy-analyzer/internal/domain"
)

// GenerateReport formats the comparison with the named formatter and writes
// the result to a timestamped file in the working directory. Returns the
// written filename.
func GenerateReport(results *domain.PolicyComparison, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
			ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "),
			strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, results, extensionFor(f.Name()))
}

func extensionFor(name string) string {
	switch {
	case name == "console":
		return "txt"
	case strings.Contains(name, "csv"):
		return "csv"
	default:
		return name
	}
}
