package report

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
)

// RecordSource hands the report service every financial record inside a
// window; aggregation happens here, not in SQL.
type RecordSource interface {
	RecordsForWindow(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]analytics.Record, error)
}

type BucketSource interface {
	BucketTable(ctx context.Context, ownerID ulid.ULID) (analytics.BucketTable, error)
}

type ForecastSource interface {
	Forecast(ctx context.Context, ownerID ulid.ULID, companyTag string, months int) ([]sale.ForecastBucket, error)
}

type ConversionSource interface {
	ConversionStats(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]lead.SourceConversion, error)
}

const (
	dashboardTrendMonths    = 6
	dashboardForecastMonths = 3
)

type Service struct {
	Records    RecordSource
	Buckets    BucketSource
	Forecasts  ForecastSource
	Conversion ConversionSource
	shared.BaseService

	// Now is the clock behind trailing-window calculations.
	Now func() time.Time
}

func NewService(records RecordSource, buckets BucketSource, forecasts ForecastSource, conversion ConversionSource, ownerChecker *shared.OwnerCheckerService) *Service {
	return &Service{
		Records:    records,
		Buckets:    buckets,
		Forecasts:  forecasts,
		Conversion: conversion,
		BaseService: shared.BaseService{
			OwnerChecker: ownerChecker,
		},
		Now: time.Now,
	}
}

// PeriodReport aggregates the window, the immediately preceding window of
// equal length, and the category breakdown.
func (s *Service) PeriodReport(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) (*PeriodReport, error) {
	if err := s.EnsureOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if w.IsEmpty() {
		return nil, appErrors.NewValidationError("period", "period end must not precede its start")
	}

	table, err := s.bucketTable(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	records, err := s.Records.RecordsForWindow(ctx, ownerID, companyTag, w)
	if err != nil {
		return nil, err
	}

	prev := w.Previous()
	prevRecords, err := s.Records.RecordsForWindow(ctx, ownerID, companyTag, prev)
	if err != nil {
		return nil, err
	}

	kpi := analytics.Aggregate(records, w, table)
	prevKPI := analytics.Aggregate(prevRecords, prev, table)

	return &PeriodReport{
		From:      w.Start,
		To:        w.End,
		KPI:       kpi,
		Previous:  prevKPI,
		Deltas:    buildDeltas(kpi, prevKPI),
		Breakdown: analytics.Breakdown(records),
	}, nil
}

// MonthlyTrend buckets the trailing N calendar months, current month
// included, into per-month KPI rows.
func (s *Service) MonthlyTrend(ctx context.Context, ownerID ulid.ULID, companyTag string, months int) (*MonthlyTrend, error) {
	if err := s.EnsureOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if months < 1 {
		return nil, appErrors.NewValidationError("months", "months must be at least 1")
	}

	now := s.Now().UTC()
	return s.trend(ctx, ownerID, companyTag, months, now.Year(), now.Month())
}

// Dashboard composes the current month's KPIs, the trailing trend, the lead
// funnel and the installment forecast into one payload.
func (s *Service) Dashboard(ctx context.Context, ownerID ulid.ULID, companyTag string, year int, month time.Month) (*Dashboard, error) {
	if err := s.EnsureOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, appErrors.NewValidationError("month", "month must be between 1 and 12")
	}

	table, err := s.bucketTable(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	w := analytics.MonthWindow(year, month)
	records, err := s.Records.RecordsForWindow(ctx, ownerID, companyTag, w)
	if err != nil {
		return nil, err
	}
	prev := w.Previous()
	prevRecords, err := s.Records.RecordsForWindow(ctx, ownerID, companyTag, prev)
	if err != nil {
		return nil, err
	}

	trend, err := s.trend(ctx, ownerID, companyTag, dashboardTrendMonths, year, month)
	if err != nil {
		return nil, err
	}

	conversion, err := s.Conversion.ConversionStats(ctx, ownerID, companyTag, w)
	if err != nil {
		return nil, err
	}

	forecast, err := s.Forecasts.Forecast(ctx, ownerID, companyTag, dashboardForecastMonths)
	if err != nil {
		return nil, err
	}

	kpi := analytics.Aggregate(records, w, table)
	prevKPI := analytics.Aggregate(prevRecords, prev, table)

	return &Dashboard{
		Month:      w.Start.Format("2006-01"),
		KPI:        kpi,
		Deltas:     buildDeltas(kpi, prevKPI),
		Trend:      trend.Months,
		Conversion: conversion,
		Forecast:   forecast,
	}, nil
}

func (s *Service) trend(ctx context.Context, ownerID ulid.ULID, companyTag string, months, year int, month time.Month) (*MonthlyTrend, error) {
	table, err := s.bucketTable(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	end := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	w := analytics.Range(start, end)

	records, err := s.Records.RecordsForWindow(ctx, ownerID, companyTag, w)
	if err != nil {
		return nil, err
	}

	return &MonthlyTrend{
		Months:  analytics.BucketByMonth(records),
		Overall: analytics.Aggregate(records, w, table),
	}, nil
}

func (s *Service) bucketTable(ctx context.Context, ownerID ulid.ULID) (analytics.BucketTable, error) {
	if s.Buckets == nil {
		return analytics.DefaultBuckets(), nil
	}
	table, err := s.Buckets.BucketTable(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func buildDeltas(current, previous analytics.KPI) map[string]KPIDelta {
	return map[string]KPIDelta{
		"income": {
			Change:    analytics.FormatDelta(current.Income, previous.Income),
			Direction: analytics.Classify(current.Income, previous.Income, analytics.HigherIsBetter),
		},
		"expenses": {
			Change:    analytics.FormatDelta(current.Expenses, previous.Expenses),
			Direction: analytics.Classify(current.Expenses, previous.Expenses, analytics.LowerIsBetter),
		},
		"profit": {
			Change:    analytics.FormatDelta(current.Profit, previous.Profit),
			Direction: analytics.Classify(current.Profit, previous.Profit, analytics.HigherIsBetter),
		},
		"margin": {
			Change:    analytics.FormatDelta(current.Margin, previous.Margin),
			Direction: analytics.Classify(current.Margin, previous.Margin, analytics.HigherIsBetter),
		},
	}
}
