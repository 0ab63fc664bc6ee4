package pkg

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user-supplied monetary input into an exact decimal.
// Malformed input collapses to zero so a single bad record cannot poison an
// aggregate; negative input is rejected the same way since record amounts
// are unsigned by contract.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	// Tolerate thousands separators and comma decimal points coming from
	// spreadsheet imports.
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
