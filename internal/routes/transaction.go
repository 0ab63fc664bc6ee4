package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
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

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, body.CompanyTag, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	t := &transaction.Transaction{
		OwnerId:     ownerID,
		Kind:        analytics.Kind(body.Kind),
		Category:    body.Category,
		Subcategory: body.Subcategory,
		Amount:      pkg.ParseAmount(body.Amount),
		Date:        date,
		CompanyTag:  companyTag,
		Comment:     body.Comment,
	}
	if err := h.TransactionService.Create(ctx, t); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionResponse{Transaction: t})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transactionID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, body.CompanyTag, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	t := &transaction.Transaction{
		Id:          transactionID,
		OwnerId:     ownerID,
		Kind:        analytics.Kind(body.Kind),
		Category:    body.Category,
		Subcategory: body.Subcategory,
		Amount:      pkg.ParseAmount(body.Amount),
		Date:        date,
		CompanyTag:  companyTag,
		Comment:     body.Comment,
	}
	if err := h.TransactionService.Update(ctx, t); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionResponse{Transaction: t})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transactionID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.Delete(ctx, transactionID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transaction deleted"})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transactionID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	t, err := h.TransactionService.GetByID(ctx, transactionID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionResponse{Transaction: t})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter := transaction.ListFilter{
		Kind:       c.Query("kind"),
		CompanyTag: c.Query("company"),
	}
	if from := c.Query("from"); from != "" {
		d, err := parseDate(from)
		if err != nil {
			h.respondError(c, err)
			return
		}
		filter.From = &d
	}
	if to := c.Query("to"); to != "" {
		d, err := parseDate(to)
		if err != nil {
			h.respondError(c, err)
			return
		}
		filter.To = &d
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.List(ctx, ownerID, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionListResponse{
		Transactions: transactions,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		Total:        total,
	})
}
