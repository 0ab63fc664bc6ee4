package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/report"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/user"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/logger"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/middleware"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

const dateLayout = "2006-01-02"

type Handler struct {
	UserService        *user.Service
	CompanyService     *company.Service
	CategoryService    *category.Service
	TransactionService *transaction.Service
	SaleService        *sale.Service
	LeadService        *lead.Service
	PayrollService     *payroll.Service
	ReportService      *report.Service
}

func (h *Handler) GetOwnerIDFromContext(c *gin.Context) (ulid.ULID, error) {
	ownerIDStr, exists := c.Get(middleware.OwnerIDKey)
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	ownerID, err := pkg.ParseULID(ownerIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return ownerID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "20")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 20
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) parseIDParam(c *gin.Context, name string) (ulid.ULID, error) {
	raw := c.Param(name)
	if raw == "" {
		return ulid.ULID{}, appErrors.NewValidationError(name, "is required")
	}
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(name, "invalid id format")
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, appErrors.NewValidationError("date", "expected YYYY-MM-DD")
	}
	return d, nil
}

// parseWindow reads either month+year or an explicit from/to pair from the
// query string. The default is the current calendar month.
func (h *Handler) parseWindow(c *gin.Context) (analytics.Window, error) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			return analytics.Window{}, appErrors.NewValidationError("period", "from and to must both be set")
		}
		start, err := parseDate(from)
		if err != nil {
			return analytics.Window{}, appErrors.NewValidationError("from", "expected YYYY-MM-DD")
		}
		end, err := parseDate(to)
		if err != nil {
			return analytics.Window{}, appErrors.NewValidationError("to", "expected YYYY-MM-DD")
		}
		return analytics.Range(start, end), nil
	}

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if y := c.Query("year"); y != "" {
		parsed, err := pkg.ParseInt(y)
		if err != nil {
			return analytics.Window{}, appErrors.NewValidationError("year", "expected a number")
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := pkg.ParseInt(m)
		if err != nil || parsed < 1 || parsed > 12 {
			return analytics.Window{}, appErrors.NewValidationError("month", "expected 1-12")
		}
		month = time.Month(parsed)
	}

	return analytics.MonthWindow(year, month), nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
