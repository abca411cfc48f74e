package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reviewer/internal/product"
	"github.com/dmitrymomot/reviewer/pkg/requestid"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	product.Register(reg)
	h := router(appConfig{Env: "development", Name: "reviewer"}, reg, nil)

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
	})

	t.Run("readiness", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("product rejection carries a request id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"","price":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NotEmpty(t, w.Header().Get(requestid.Header))
	})
}

func TestRouter_RoutingErrors(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	product.Register(reg)
	h := router(appConfig{Env: "development"}, reg, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"wrong method on a product route", http.MethodGet, "/api/products", http.StatusMethodNotAllowed, "method_not_allowed"},
		{"unknown path", http.MethodGet, "/orders", http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestRouter_NotReadyWithoutValidators(t *testing.T) {
	t.Parallel()

	h := router(appConfig{Env: "production"}, validator.NewRegistry(), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "NOT_READY", w.Body.String())
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nonEmpty(""))
	assert.Equal(t, []string{".env"}, nonEmpty("", ".env"))
}
