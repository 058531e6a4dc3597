// Package normalize converts the free-text fragments found in credit
// report markup into canonical values: integer cents, dates, and the
// account/payment status enums. All functions are pure; a value that
// cannot be normalized degrades to absence, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var moneyRe = regexp.MustCompile(`-?\$?\s*\d[\d,]*(?:\.\d{1,2})?`)

// Money converts a free-text currency string ("$1,234.56", "1234",
// "Balance: $89.00") to integer cents. Returns nil when no usable amount
// is present. Amounts are kept as cents end to end to avoid float drift.
func Money(s string) *int64 {
	m := moneyRe.FindString(s)
	if m == "" {
		return nil
	}

	neg := strings.Contains(m, "-")
	m = strings.NewReplacer("$", "", ",", "", " ", "", "-", "").Replace(m)
	if m == "" || m == "." {
		return nil
	}

	whole, frac, _ := strings.Cut(m, ".")
	if whole == "" {
		whole = "0"
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return nil
	}

	cents := dollars * 100
	if frac != "" {
		// Pad or truncate to exactly two digits.
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return nil
		}
		cents += f
	}
	if neg {
		cents = -cents
	}
	return &cents
}
