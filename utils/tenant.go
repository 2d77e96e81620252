// utils/tenant.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BarbershopHeader carries the tenant scope for every /api request.
// Authentication is handled outside this service; the header is trusted.
const BarbershopHeader = "X-Barbershop-ID"

// TenantMiddleware requires a valid barbershop UUID header and stores it in
// the request context under "barbershopId".
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(BarbershopHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": BarbershopHeader + " header required"})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid barbershop ID format"})
			return
		}

		c.Set("barbershopId", id.String())
		c.Next()
	}
}

// BarbershopID extracts the tenant scope placed by TenantMiddleware.
func BarbershopID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("barbershopId")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
