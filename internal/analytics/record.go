// Package analytics holds the pure aggregation core of the P&L tracker:
// period KPI reduction, category breakdowns, delta classification and
// monthly bucketing. Everything in this package is a side-effect-free
// function over records already fetched from the store; no I/O happens here.
package analytics

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Record is the analytics view of a financial transaction. Amounts are
// non-negative exact decimals; the Kind decides which side of the P&L the
// amount lands on.
type Record struct {
	ID          ulid.ULID
	Date        time.Time
	Kind        Kind
	Category    string
	Subcategory string
	Amount      decimal.Decimal
	CompanyTag  string
}

// Label composes the display label used by category breakdowns.
func (r Record) Label() string {
	if r.Subcategory != "" {
		return r.Category + " / " + r.Subcategory
	}
	return r.Category
}
