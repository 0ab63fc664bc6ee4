package report

import (
	"time"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
)

// KPIDelta carries the formatted change of one KPI against the preceding
// period along with its good/bad classification.
type KPIDelta struct {
	Change    string              `json:"change"`
	Direction analytics.Direction `json:"direction"`
}

type PeriodReport struct {
	From      time.Time                 `json:"from"`
	To        time.Time                 `json:"to"`
	KPI       analytics.KPI             `json:"kpi"`
	Previous  analytics.KPI             `json:"previous"`
	Deltas    map[string]KPIDelta       `json:"deltas"`
	Breakdown analytics.BreakdownResult `json:"breakdown"`
}

type MonthlyTrend struct {
	Months  []analytics.MonthBucket `json:"months"`
	Overall analytics.KPI           `json:"overall"`
}

// Dashboard is the single payload behind the landing screen: current month
// KPIs, the trailing trend, the lead funnel and the payment forecast.
type Dashboard struct {
	Month      string                  `json:"month"`
	KPI        analytics.KPI           `json:"kpi"`
	Deltas     map[string]KPIDelta     `json:"deltas"`
	Trend      []analytics.MonthBucket `json:"trend"`
	Conversion []lead.SourceConversion `json:"conversion"`
	Forecast   []sale.ForecastBucket   `json:"forecast"`
}
