package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
)

func TestBucketByMonthOrderingAndTotals(t *testing.T) {
	records := []analytics.Record{
		record(analytics.KindIncome, "2024-02-10", "A", 200),
		record(analytics.KindIncome, "2024-01-05", "A", 100),
		record(analytics.KindExpense, "2024-01-20", "B", 40),
		record(analytics.KindExpense, "2024-02-25", "B", 50),
	}

	buckets := analytics.BucketByMonth(records)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Month != "2024-01" || buckets[1].Month != "2024-02" {
		t.Fatalf("months out of order: %s, %s", buckets[0].Month, buckets[1].Month)
	}

	jan := buckets[0]
	if !jan.Income.Equal(decimal.NewFromInt(100)) || !jan.Expenses.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("january totals wrong: %+v", jan)
	}
	if !jan.Profit.Equal(decimal.NewFromInt(60)) || !jan.Margin.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("january derived values wrong: %+v", jan)
	}
}

func TestBucketByMonthFirstBucketHasNoChange(t *testing.T) {
	records := []analytics.Record{
		record(analytics.KindIncome, "2024-01-05", "A", 100),
		record(analytics.KindIncome, "2024-02-05", "A", 150),
	}

	buckets := analytics.BucketByMonth(records)

	if buckets[0].IncomeChange != nil {
		t.Fatalf("first bucket must have nil change, got %q", *buckets[0].IncomeChange)
	}
	if buckets[1].IncomeChange == nil || *buckets[1].IncomeChange != "+50.0%" {
		t.Fatalf("second bucket income change = %v, want +50.0%%", buckets[1].IncomeChange)
	}
}

func TestBucketByMonthZeroReferenceChange(t *testing.T) {
	records := []analytics.Record{
		record(analytics.KindExpense, "2024-01-10", "B", 40),
		record(analytics.KindIncome, "2024-02-05", "A", 150),
	}

	buckets := analytics.BucketByMonth(records)

	// January has zero income, so February's relative income change is
	// unbounded.
	if buckets[1].IncomeChange == nil || *buckets[1].IncomeChange != analytics.UnboundedIncrease {
		t.Fatalf("income change = %v, want %q", buckets[1].IncomeChange, analytics.UnboundedIncrease)
	}
	// February has zero expenses against 40 in January.
	if buckets[1].ExpensesChange == nil || *buckets[1].ExpensesChange != "-100.0%" {
		t.Fatalf("expenses change = %v, want -100.0%%", buckets[1].ExpensesChange)
	}
}

func TestBucketByMonthEmpty(t *testing.T) {
	if got := analytics.BucketByMonth(nil); len(got) != 0 {
		t.Fatalf("expected no buckets, got %d", len(got))
	}
}
