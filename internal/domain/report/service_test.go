package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/report"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type fakeRecords struct {
	fn func(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]analytics.Record, error)
}

func (f *fakeRecords) RecordsForWindow(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]analytics.Record, error) {
	if f.fn != nil {
		return f.fn(ctx, ownerID, companyTag, w)
	}
	return nil, nil
}

type fakeBuckets struct {
	table analytics.BucketTable
}

func (f *fakeBuckets) BucketTable(ctx context.Context, ownerID ulid.ULID) (analytics.BucketTable, error) {
	if f.table != nil {
		return f.table, nil
	}
	return analytics.DefaultBuckets(), nil
}

type fakeForecasts struct {
	buckets []sale.ForecastBucket
}

func (f *fakeForecasts) Forecast(ctx context.Context, ownerID ulid.ULID, companyTag string, months int) ([]sale.ForecastBucket, error) {
	return f.buckets, nil
}

type fakeConversion struct {
	stats []lead.SourceConversion
}

func (f *fakeConversion) ConversionStats(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]lead.SourceConversion, error) {
	return f.stats, nil
}

type fakeOwnerChecker struct {
	err error
}

func (f *fakeOwnerChecker) Exists(ctx context.Context, ownerID ulid.ULID) error {
	return f.err
}

func newService(records report.RecordSource, forecasts report.ForecastSource, conversion report.ConversionSource) *report.Service {
	checker := shared.NewOwnerCheckerService(&fakeOwnerChecker{})
	return report.NewService(records, &fakeBuckets{}, forecasts, conversion, checker)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(kind analytics.Kind, date time.Time, category string, amount string) analytics.Record {
	return analytics.Record{
		ID:       pkg.GenerateULIDObject(),
		Date:     date,
		Kind:     kind,
		Category: category,
		Amount:   dec(amount),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodReport(t *testing.T) {
	owner := pkg.GenerateULIDObject()
	w := analytics.MonthWindow(2024, time.February)

	records := &fakeRecords{
		fn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, win analytics.Window) ([]analytics.Record, error) {
			if win.Start.Month() == time.February {
				return []analytics.Record{
					record(analytics.KindIncome, day(2024, time.February, 5), "Продажи", "150000"),
					record(analytics.KindExpense, day(2024, time.February, 10), "Реклама", "50000"),
				}, nil
			}
			return []analytics.Record{
				record(analytics.KindIncome, day(2024, time.January, 5), "Продажи", "100000"),
				record(analytics.KindExpense, day(2024, time.January, 10), "Реклама", "50000"),
			}, nil
		},
	}
	svc := newService(records, &fakeForecasts{}, &fakeConversion{})

	rep, err := svc.PeriodReport(context.Background(), owner, "", w)
	if err != nil {
		t.Fatalf("PeriodReport returned error: %v", err)
	}

	if !rep.KPI.Income.Equal(dec("150000")) {
		t.Errorf("expected income 150000, got %s", rep.KPI.Income)
	}
	if !rep.KPI.Profit.Equal(dec("100000")) {
		t.Errorf("expected profit 100000, got %s", rep.KPI.Profit)
	}
	if !rep.Previous.Income.Equal(dec("100000")) {
		t.Errorf("expected previous income 100000, got %s", rep.Previous.Income)
	}

	income := rep.Deltas["income"]
	if income.Change != "+50.0%" {
		t.Errorf("expected income change +50.0%%, got %s", income.Change)
	}
	if income.Direction != analytics.Positive {
		t.Errorf("expected positive income direction, got %s", income.Direction)
	}

	expenses := rep.Deltas["expenses"]
	if expenses.Change != "0.0%" {
		t.Errorf("expected expenses change 0.0%%, got %s", expenses.Change)
	}
	if expenses.Direction != analytics.Neutral {
		t.Errorf("expected neutral expenses direction, got %s", expenses.Direction)
	}

	profit := rep.Deltas["profit"]
	if profit.Change != "+100.0%" {
		t.Errorf("expected profit change +100.0%%, got %s", profit.Change)
	}

	if len(rep.Breakdown.Income) != 1 || rep.Breakdown.Income[0].Label != "Продажи" {
		t.Errorf("unexpected income breakdown: %+v", rep.Breakdown.Income)
	}
}

func TestPeriodReportRisingExpensesAreNegative(t *testing.T) {
	owner := pkg.GenerateULIDObject()
	w := analytics.MonthWindow(2024, time.February)

	records := &fakeRecords{
		fn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, win analytics.Window) ([]analytics.Record, error) {
			if win.Start.Month() == time.February {
				return []analytics.Record{
					record(analytics.KindExpense, day(2024, time.February, 1), "Реклама", "80000"),
				}, nil
			}
			return []analytics.Record{
				record(analytics.KindExpense, day(2024, time.January, 1), "Реклама", "40000"),
			}, nil
		},
	}
	svc := newService(records, &fakeForecasts{}, &fakeConversion{})

	rep, err := svc.PeriodReport(context.Background(), owner, "", w)
	if err != nil {
		t.Fatalf("PeriodReport returned error: %v", err)
	}
	if rep.Deltas["expenses"].Direction != analytics.Negative {
		t.Errorf("expected rising expenses to classify negative, got %s", rep.Deltas["expenses"].Direction)
	}
}

func TestPeriodReportRejectsEmptyWindow(t *testing.T) {
	svc := newService(&fakeRecords{}, &fakeForecasts{}, &fakeConversion{})

	w := analytics.Range(day(2024, time.March, 10), day(2024, time.March, 1))
	if _, err := svc.PeriodReport(context.Background(), pkg.GenerateULIDObject(), "", w); err == nil {
		t.Fatal("expected an error for an inverted window")
	}
}

func TestMonthlyTrendWindow(t *testing.T) {
	owner := pkg.GenerateULIDObject()

	var gotWindow analytics.Window
	records := &fakeRecords{
		fn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, win analytics.Window) ([]analytics.Record, error) {
			gotWindow = win
			return []analytics.Record{
				record(analytics.KindIncome, day(2024, time.February, 5), "Продажи", "100000"),
				record(analytics.KindIncome, day(2024, time.March, 5), "Продажи", "150000"),
			}, nil
		},
	}
	svc := newService(records, &fakeForecasts{}, &fakeConversion{})
	svc.Now = func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	trend, err := svc.MonthlyTrend(context.Background(), owner, "", 3)
	if err != nil {
		t.Fatalf("MonthlyTrend returned error: %v", err)
	}

	if gotWindow.Start != day(2024, time.January, 1) {
		t.Errorf("expected trailing window to start 2024-01-01, got %s", gotWindow.Start)
	}
	if gotWindow.End != day(2024, time.March, 31) {
		t.Errorf("expected trailing window to end 2024-03-31, got %s", gotWindow.End)
	}

	if len(trend.Months) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(trend.Months))
	}
	if trend.Months[0].Month != "2024-02" || trend.Months[1].Month != "2024-03" {
		t.Errorf("unexpected bucket order: %s, %s", trend.Months[0].Month, trend.Months[1].Month)
	}
	if !trend.Overall.Income.Equal(dec("250000")) {
		t.Errorf("expected overall income 250000, got %s", trend.Overall.Income)
	}
}

func TestDashboardComposition(t *testing.T) {
	owner := pkg.GenerateULIDObject()

	records := &fakeRecords{
		fn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, win analytics.Window) ([]analytics.Record, error) {
			return []analytics.Record{
				record(analytics.KindIncome, day(2024, time.March, 5), "Продажи", "100000"),
			}, nil
		},
	}
	forecasts := &fakeForecasts{
		buckets: []sale.ForecastBucket{{Month: "2024-04", Expected: dec("25000")}},
	}
	conversion := &fakeConversion{
		stats: []lead.SourceConversion{{Source: "instagram", Total: 4, Converted: 2, Conversion: dec("50")}},
	}
	svc := newService(records, forecasts, conversion)

	dash, err := svc.Dashboard(context.Background(), owner, "", 2024, time.March)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}

	if dash.Month != "2024-03" {
		t.Errorf("expected month 2024-03, got %s", dash.Month)
	}
	if !dash.KPI.Income.Equal(dec("100000")) {
		t.Errorf("expected income 100000, got %s", dash.KPI.Income)
	}
	if len(dash.Forecast) != 1 || dash.Forecast[0].Month != "2024-04" {
		t.Errorf("unexpected forecast: %+v", dash.Forecast)
	}
	if len(dash.Conversion) != 1 || dash.Conversion[0].Source != "instagram" {
		t.Errorf("unexpected conversion stats: %+v", dash.Conversion)
	}
	if len(dash.Trend) == 0 {
		t.Error("expected a non-empty trend")
	}
}
