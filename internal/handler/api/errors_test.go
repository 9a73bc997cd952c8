//go:build unit

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-ops/internal/domain/drug"
	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "stale write on any aggregate", err: commands.ErrConcurrentModification, want: http.StatusConflict},
		{name: "stock ceiling", err: drug.ErrQuantityTooLarge, want: http.StatusBadRequest},
		{name: "insufficient stock", err: drug.ErrInsufficientQuantity, want: http.StatusBadRequest},
		{name: "emergency transition", err: emergency.ErrInvalidTransition, want: http.StatusBadRequest},
		{name: "missing drug", err: queries.ErrDrugNotFound, want: http.StatusNotFound},
		{name: "store failure", err: infra.WrapRepoErr("update drug", errors.New("int4 out of range")), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestAbortWithCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict keeps its message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		abortWithCategory(c, commands.ErrConcurrentModification)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "modified by another request")
	})

	t.Run("uncategorized errors are opaque", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		abortWithCategory(c, errors.New("int4 out of range"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	})
}
