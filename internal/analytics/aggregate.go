package analytics

import "github.com/shopspring/decimal"

// KPI is the summary projection of a record list over one window. Profit is
// always exactly Income minus Expenses; Margin is profit as a percentage of
// income and is zero whenever income is zero.
type KPI struct {
	Income         decimal.Decimal `json:"income"`
	Expenses       decimal.Decimal `json:"expenses"`
	Profit         decimal.Decimal `json:"profit"`
	Margin         decimal.Decimal `json:"margin"`
	Withdrawals    decimal.Decimal `json:"withdrawals"`
	MoneyInProject decimal.Decimal `json:"moneyInProject"`
}

func ZeroKPI() KPI {
	return KPI{
		Income:         decimal.Zero,
		Expenses:       decimal.Zero,
		Profit:         decimal.Zero,
		Margin:         decimal.Zero,
		Withdrawals:    decimal.Zero,
		MoneyInProject: decimal.Zero,
	}
}

// Aggregate reduces records falling inside the window into a KPI in one
// pass. Amounts tagged with a special bucket category stay in the
// income/expense totals and are additionally summed into their bucket; the
// buckets are a sub-classification, not an exclusion.
func Aggregate(records []Record, w Window, buckets BucketTable) KPI {
	result := ZeroKPI()

	for _, r := range records {
		if !w.Contains(r.Date) {
			continue
		}

		switch r.Kind {
		case KindIncome:
			result.Income = result.Income.Add(r.Amount)
		case KindExpense:
			result.Expenses = result.Expenses.Add(r.Amount)
		default:
			continue
		}

		switch b, _ := buckets.Lookup(r.Category); b {
		case BucketWithdrawals:
			result.Withdrawals = result.Withdrawals.Add(r.Amount)
		case BucketMoneyInProject:
			result.MoneyInProject = result.MoneyInProject.Add(r.Amount)
		}
	}

	result.Profit = result.Income.Sub(result.Expenses)
	if result.Income.IsPositive() {
		result.Margin = result.Profit.Div(result.Income).Mul(decimal.NewFromInt(100))
	}

	return result
}
