package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/user"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
)

// UpsertProfile registers the identity stamped on the request and seeds the
// owner's default categories. The gateway calls it once after sign-up, but
// the operation is idempotent.
func (h *Handler) UpsertProfile(c *gin.Context) {
	var body contracts.ProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	u := &user.User{
		Id:    ownerID,
		Name:  body.Name,
		Email: body.Email,
	}
	if err := h.UserService.Register(ctx, u); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CategoryService.EnsureDefaults(ctx, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProfileResponse{User: u})
}

func (h *Handler) GetProfile(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	u, err := h.UserService.GetByID(ctx, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProfileResponse{User: u})
}
