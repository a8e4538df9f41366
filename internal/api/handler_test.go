package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos-service/internal/service"
	"pos-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "validation",
			err:    &service.ValidationError{Violations: []string{"name is required"}},
			status: http.StatusBadRequest,
		},
		{
			name:   "missing ingredient",
			err:    &service.MissingIngredientError{Ingredient: "flour"},
			status: http.StatusBadRequest,
		},
		{
			name:   "insufficient stock",
			err:    &service.InsufficientStockError{Ingredient: "flour", Required: 10, Available: 3},
			status: http.StatusConflict,
		},
		{
			name:   "duplicate ingredient",
			err:    fmt.Errorf("%w: flour", store.ErrDuplicateIngredient),
			status: http.StatusConflict,
		},
		{
			name:   "ingredient not found",
			err:    fmt.Errorf("%w: flour", store.ErrIngredientNotFound),
			status: http.StatusNotFound,
		},
		{
			name:   "unexpected",
			err:    fmt.Errorf("connection reset"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordError(tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
