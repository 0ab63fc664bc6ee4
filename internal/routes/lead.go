package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
)

func (h *Handler) CreateLead(c *gin.Context) {
	var body contracts.LeadCreateRequest
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

	entity := &lead.Lead{
		OwnerId:    ownerID,
		Name:       body.Name,
		Source:     body.Source,
		Status:     lead.Status(body.Status),
		CompanyTag: companyTag,
		Date:       date,
	}
	if err := h.LeadService.Create(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.LeadResponse{Lead: entity})
}

func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	var body contracts.LeadStatusUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	leadID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.LeadService.UpdateStatus(ctx, leadID, ownerID, lead.Status(body.Status)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Lead status updated"})
}

func (h *Handler) DeleteLead(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	leadID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.LeadService.Delete(ctx, leadID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Lead deleted"})
}

func (h *Handler) ListLeads(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := lead.Status(c.Query("status"))
	if status != "" && !status.IsValid() {
		h.respondError(c, appErrors.NewValidationError("status", "unknown lead status"))
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, c.Query("company"), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)
	leads, total, err := h.LeadService.List(ctx, ownerID, companyTag, status, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LeadListResponse{
		Leads: leads,
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
	})
}

func (h *Handler) LeadConversion(c *gin.Context) {
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

	stats, err := h.LeadService.ConversionStats(ctx, ownerID, companyTag, w)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LeadConversionResponse{
		From:    w.Start.Format(dateLayout),
		To:      w.End.Format(dateLayout),
		Sources: stats,
	})
}
