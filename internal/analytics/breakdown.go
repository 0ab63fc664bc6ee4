package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

type CategoryTotal struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type BreakdownResult struct {
	Income  []CategoryTotal `json:"income"`
	Expense []CategoryTotal `json:"expense"`
}

// Breakdown groups record amounts by display label, partitioned by kind.
// Output is sorted by descending amount; equal amounts keep the order the
// labels first appeared in the input.
func Breakdown(records []Record) BreakdownResult {
	income := newGrouper()
	expense := newGrouper()

	for _, r := range records {
		switch r.Kind {
		case KindIncome:
			income.add(r.Label(), r.Amount)
		case KindExpense:
			expense.add(r.Label(), r.Amount)
		}
	}

	return BreakdownResult{
		Income:  income.sorted(),
		Expense: expense.sorted(),
	}
}

type grouper struct {
	totals map[string]decimal.Decimal
	order  []string
}

func newGrouper() *grouper {
	return &grouper{totals: make(map[string]decimal.Decimal)}
}

func (g *grouper) add(label string, amount decimal.Decimal) {
	if _, seen := g.totals[label]; !seen {
		g.order = append(g.order, label)
	}
	g.totals[label] = g.totals[label].Add(amount)
}

func (g *grouper) sorted() []CategoryTotal {
	out := make([]CategoryTotal, 0, len(g.order))
	for _, label := range g.order {
		out = append(out, CategoryTotal{Label: label, Amount: g.totals[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}
