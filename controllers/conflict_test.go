package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"barberbook-backend/utils"
)

// These tests stop at parameter validation, which rejects the request
// before any database access happens.
func conflictTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", utils.TenantMiddleware())
	api.GET("/conflicts", GetConflicts)
	return r
}

func TestGetConflicts_RequiresTenantHeader(t *testing.T) {
	r := conflictTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/conflicts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), utils.BarbershopHeader)
}

func TestGetConflicts_RejectsBadTenantHeader(t *testing.T) {
	r := conflictTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/conflicts", nil)
	req.Header.Set(utils.BarbershopHeader, "not-a-uuid")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConflicts_RejectsBadDates(t *testing.T) {
	r := conflictTestRouter()
	shop := uuid.New().String()

	tests := []struct {
		name  string
		query string
	}{
		{"bad start", "?start=15-02-2024"},
		{"bad end", "?start=2024-02-15&end=tomorrow"},
		{"inverted range", "?start=2024-02-20&end=2024-02-15"},
		{"bad barber", "?start=2024-02-15&end=2024-02-16&barber_id=xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/conflicts"+tt.query, nil)
			req.Header.Set(utils.BarbershopHeader, shop)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
