package policyterm

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// MonthsBetween returns the number of whole months in a policy term that
// starts at fromAge and ends at toAge. Negative terms are returned as-is so
// callers can reject them.
func MonthsBetween(fromAge, toAge int) int {
	return (toAge - fromAge) * 12
}

// PolicyYear returns the 1-based policy year for a 0-based month index.
func PolicyYear(monthIndex int) int {
	return monthIndex/12 + 1
}

// MonthInPolicyYear returns the 1-based month within the policy year for a
// 0-based month index.
func MonthInPolicyYear(monthIndex int) int {
	return monthIndex%12 + 1
}

// AgeAtMonth returns the fractional age at the start of a 0-based month index
// for a policyholder aged currentAge at month 0.
func AgeAtMonth(currentAge, monthIndex int) decimal.Decimal {
	return decimal.NewFromInt(int64(currentAge)).Add(decimal.NewFromInt(int64(monthIndex)).Div(twelve))
}

// MonthlyRate converts an annual rate to a monthly rate by simple division.
// The product intentionally uses annual/12 rather than the geometric
// equivalent, and both phases depend on that convention.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// IsWithdrawalAnniversary reports whether monthIndex lands on a 12-month
// boundary strictly after the accumulation-to-withdrawal transition. The
// transition month itself is not an anniversary.
func IsWithdrawalAnniversary(monthIndex, accumulationMonths int) bool {
	offset := monthIndex - accumulationMonths
	return offset > 0 && offset%12 == 0
}
