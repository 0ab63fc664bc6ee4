package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

func (h *Handler) PeriodReport(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	w, err := h.parseWindow(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, c.Query("company"), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rep, err := h.ReportService.PeriodReport(ctx, ownerID, companyTag, w)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PeriodReportResponse{Report: rep})
}

func (h *Handler) MonthlyTrend(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	months := 6
	if m := c.Query("months"); m != "" {
		parsed, err := pkg.ParseInt(m)
		if err != nil || parsed < 1 || parsed > 36 {
			h.respondError(c, appErrors.NewValidationError("months", "expected 1-36"))
			return
		}
		months = parsed
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, c.Query("company"), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	trend, err := h.ReportService.MonthlyTrend(ctx, ownerID, companyTag, months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MonthlyTrendResponse{Trend: trend})
}

func (h *Handler) Dashboard(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if y := c.Query("year"); y != "" {
		parsed, err := pkg.ParseInt(y)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("year", "expected a number"))
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := pkg.ParseInt(m)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "expected 1-12"))
			return
		}
		month = parsed
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, c.Query("company"), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dash, err := h.ReportService.Dashboard(ctx, ownerID, companyTag, year, time.Month(month))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DashboardResponse{Dashboard: dash})
}
