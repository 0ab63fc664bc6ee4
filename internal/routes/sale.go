package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

func (h *Handler) CreateSale(c *gin.Context) {
	var body contracts.SaleCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var managerID *string
	if body.ManagerId != "" {
		managerID = &body.ManagerId
	}
	manager, err := pkg.ParseULIDPtr(managerID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("managerId", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, body.CompanyTag, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &sale.Sale{
		OwnerId:     ownerID,
		ClientName:  body.ClientName,
		ManagerId:   manager,
		CompanyTag:  companyTag,
		TotalAmount: pkg.ParseAmount(body.TotalAmount),
		Date:        date,
		Comment:     body.Comment,
	}
	if err := h.SaleService.Create(ctx, entity, body.InstallmentCount); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SaleResponse{Sale: entity})
}

func (h *Handler) DeleteSale(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	saleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.SaleService.Delete(ctx, saleID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Sale deleted"})
}

func (h *Handler) GetSale(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	saleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.SaleService.GetByID(ctx, saleID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SaleResponse{Sale: entity})
}

func (h *Handler) ListSales(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
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

	pagination := h.parsePagination(c)
	sales, total, err := h.SaleService.List(ctx, ownerID, companyTag, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SaleListResponse{
		Sales: sales,
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
	})
}

// RecordPayment marks money received against one installment. Partial
// payments keep the installment open.
func (h *Handler) RecordPayment(c *gin.Context) {
	var body contracts.SalePaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	saleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	installmentID, err := pkg.ParseULID(body.InstallmentId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("installmentId", "invalid id format"))
		return
	}

	paidAt := time.Now().UTC()
	if body.PaidAt != "" {
		parsed, err := parseDate(body.PaidAt)
		if err != nil {
			h.respondError(c, err)
			return
		}
		paidAt = parsed
	}

	ctx := c.Request.Context()
	entity, err := h.SaleService.RecordPayment(ctx, saleID, installmentID, ownerID, pkg.ParseAmount(body.Amount), paidAt)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SaleResponse{Sale: entity})
}

func (h *Handler) SaleForecast(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	months := 3
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

	forecast, err := h.SaleService.Forecast(ctx, ownerID, companyTag, months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SaleForecastResponse{Forecast: forecast})
}
