package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &category.Category{
		OwnerId:  ownerID,
		Name:     body.Name,
		Kind:     body.Kind,
		Bucket:   body.Bucket,
		IsActive: true,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Create(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategoryResponse{Category: entity})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &category.Category{
		Id:      categoryID,
		OwnerId: ownerID,
		Name:    body.Name,
		Kind:    body.Kind,
		Bucket:  body.Bucket,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Update(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryResponse{Category: entity})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Delete(ctx, categoryID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Category deleted"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	categories, err := h.CategoryService.List(ctx, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}
