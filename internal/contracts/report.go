package contracts

import (
	domainReport "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/report"
)

type PeriodReportResponse struct {
	Report *domainReport.PeriodReport `json:"report"`
}

type MonthlyTrendResponse struct {
	Trend *domainReport.MonthlyTrend `json:"trend"`
}

type DashboardResponse struct {
	Dashboard *domainReport.Dashboard `json:"dashboard"`
}
