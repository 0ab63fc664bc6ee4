package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthBucket is one point of the income/expense time series. The change
// fields compare against the immediately preceding bucket and are nil on the
// first one.
type MonthBucket struct {
	Month          string          `json:"month"` // YYYY-MM
	Income         decimal.Decimal `json:"income"`
	Expenses       decimal.Decimal `json:"expenses"`
	Profit         decimal.Decimal `json:"profit"`
	Margin         decimal.Decimal `json:"margin"`
	IncomeChange   *string         `json:"incomeChange,omitempty"`
	ExpensesChange *string         `json:"expensesChange,omitempty"`
	ProfitChange   *string         `json:"profitChange,omitempty"`
}

// BucketByMonth folds records into calendar-month buckets ordered ascending
// by month key. Each bucket is the same reduction Aggregate performs over a
// month window, plus month-over-month change strings produced by
// FormatDelta.
func BucketByMonth(records []Record) []MonthBucket {
	byMonth := make(map[string][]Record)
	for _, r := range records {
		key := r.Date.UTC().Format("2006-01")
		byMonth[key] = append(byMonth[key], r)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]MonthBucket, 0, len(keys))
	for i, key := range keys {
		income := decimal.Zero
		expenses := decimal.Zero
		for _, r := range byMonth[key] {
			switch r.Kind {
			case KindIncome:
				income = income.Add(r.Amount)
			case KindExpense:
				expenses = expenses.Add(r.Amount)
			}
		}

		profit := income.Sub(expenses)
		margin := decimal.Zero
		if income.IsPositive() {
			margin = profit.Div(income).Mul(decimal.NewFromInt(100))
		}

		bucket := MonthBucket{
			Month:    key,
			Income:   income,
			Expenses: expenses,
			Profit:   profit,
			Margin:   margin,
		}

		if i > 0 {
			prev := buckets[i-1]
			bucket.IncomeChange = deltaPtr(income, prev.Income)
			bucket.ExpensesChange = deltaPtr(expenses, prev.Expenses)
			bucket.ProfitChange = deltaPtr(profit, prev.Profit)
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

func deltaPtr(current, reference decimal.Decimal) *string {
	s := FormatDelta(current, reference)
	return &s
}
