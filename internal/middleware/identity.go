package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/logger"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

// OwnerIDKey is where the identity middleware stores the caller's id for
// handlers downstream.
const OwnerIDKey = "owner_id"

const ownerIDHeader = "X-User-Id"

// Identity trusts the owner id stamped on the request by the hosted
// platform's gateway. Authentication itself happens upstream; the service
// only validates the id shape and scopes every query by it.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ownerIDHeader)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "MISSING_IDENTITY",
				"message": "Missing " + ownerIDHeader + " header",
			})
			c.Abort()
			return
		}

		if !pkg.IsValidULID(raw) {
			logger.Warn().Str("owner_id", raw).Msg("Rejected request with malformed owner id")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "INVALID_IDENTITY",
				"message": "Malformed " + ownerIDHeader + " header",
			})
			c.Abort()
			return
		}

		c.Set(OwnerIDKey, raw)
		c.Next()
	}
}
