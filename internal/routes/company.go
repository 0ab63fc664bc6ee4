package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
)

func (h *Handler) CreateCompany(c *gin.Context) {
	var body contracts.CompanyCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &company.Company{
		OwnerId: ownerID,
		Name:    body.Name,
		Tag:     body.Tag,
		Color:   body.Color,
	}

	ctx := c.Request.Context()
	if err := h.CompanyService.Create(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CompanyResponse{Company: entity})
}

func (h *Handler) UpdateCompany(c *gin.Context) {
	var body contracts.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	companyID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &company.Company{
		Id:      companyID,
		OwnerId: ownerID,
		Name:    body.Name,
		Tag:     body.Tag,
		Color:   body.Color,
	}

	ctx := c.Request.Context()
	if err := h.CompanyService.Update(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CompanyResponse{Company: entity})
}

func (h *Handler) DeleteCompany(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	companyID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CompanyService.Delete(ctx, companyID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Company deleted"})
}

func (h *Handler) ListCompanies(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	companies, err := h.CompanyService.List(ctx, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CompanyListResponse{
		Companies: companies,
		Total:     len(companies),
	})
}
