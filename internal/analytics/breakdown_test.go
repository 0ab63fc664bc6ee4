package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
)

func TestBreakdownLabels(t *testing.T) {
	records := []analytics.Record{
		{Kind: analytics.KindExpense, Category: "Реклама", Subcategory: "Таргет", Amount: decimal.NewFromInt(100)},
		{Kind: analytics.KindExpense, Category: "Аренда", Amount: decimal.NewFromInt(50)},
	}

	result := analytics.Breakdown(records)

	if len(result.Expense) != 2 {
		t.Fatalf("expected 2 expense groups, got %d", len(result.Expense))
	}
	if result.Expense[0].Label != "Реклама / Таргет" {
		t.Fatalf("composed label = %q, want %q", result.Expense[0].Label, "Реклама / Таргет")
	}
	if result.Expense[1].Label != "Аренда" {
		t.Fatalf("plain label = %q, want %q", result.Expense[1].Label, "Аренда")
	}
}

func TestBreakdownGroupsAndSorts(t *testing.T) {
	records := []analytics.Record{
		{Kind: analytics.KindIncome, Category: "Продажи", Amount: decimal.NewFromInt(100)},
		{Kind: analytics.KindIncome, Category: "Консалтинг", Amount: decimal.NewFromInt(300)},
		{Kind: analytics.KindIncome, Category: "Продажи", Amount: decimal.NewFromInt(250)},
	}

	result := analytics.Breakdown(records)

	if len(result.Income) != 2 {
		t.Fatalf("expected 2 income groups, got %d", len(result.Income))
	}
	if result.Income[0].Label != "Продажи" || !result.Income[0].Amount.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("top group = %+v, want Продажи/350", result.Income[0])
	}
	if result.Income[1].Label != "Консалтинг" {
		t.Fatalf("second group = %+v, want Консалтинг", result.Income[1])
	}
}

func TestBreakdownTiesKeepInputOrder(t *testing.T) {
	records := []analytics.Record{
		{Kind: analytics.KindExpense, Category: "B", Amount: decimal.NewFromInt(10)},
		{Kind: analytics.KindExpense, Category: "A", Amount: decimal.NewFromInt(10)},
	}

	result := analytics.Breakdown(records)

	if result.Expense[0].Label != "B" || result.Expense[1].Label != "A" {
		t.Fatalf("tie order broken: %+v", result.Expense)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	result := analytics.Breakdown(nil)
	if len(result.Income) != 0 || len(result.Expense) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", result)
	}
}
