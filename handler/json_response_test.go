package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reviewer/handler"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var got handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("wraps data", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSON(map[string]string{"name": "Widget"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, handler.JSONResponse{Data: map[string]any{"name": "Widget"}}, decodeEnvelope(t, w))
	})

	t.Run("with meta and status", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSON(
			map[string]string{"name": "Widget"},
			handler.WithJSONMeta(map[string]any{"version": "1"}),
			handler.WithJSONStatus(http.StatusCreated),
		))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, handler.JSONResponse{
			Data: map[string]any{"name": "Widget"},
			Meta: map[string]any{"version": "1"},
		}, decodeEnvelope(t, w))
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSON(nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, handler.JSONResponse{}, decodeEnvelope(t, w))
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSON(errors.New("boom")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "internal_error", got.Error.Code)
		assert.Equal(t, "boom", got.Error.Message)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSONError(fmt.Errorf("lookup: %w", handler.ErrNotFound)))

		assert.Equal(t, http.StatusNotFound, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "not_found", got.Error.Code)
		assert.Equal(t, "Not Found", got.Error.Message)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()
		failures := validator.Failures{
			{Field: "Name", Code: "NotEmpty", Message: "This my custom name error"},
			{Field: "Price", Code: "GreaterThan", Message: "This my custom price error"},
		}
		w := render(t, handler.JSONError(failures))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "validation_error", got.Error.Code)
		assert.Equal(t, map[string][]string{
			"Name":  {"This my custom name error"},
			"Price": {"This my custom price error"},
		}, got.Error.Details)
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		valErr := handler.NewValidationError()
		valErr.Add("Name", "required")
		w := render(t, handler.JSONError(valErr))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, map[string][]string{"Name": {"required"}}, got.Error.Details)
	})

	t.Run("error detail keeps custom status", func(t *testing.T) {
		t.Parallel()
		w := render(t, handler.JSONError(
			&handler.ErrorDetail{Code: "product_exists", Message: "Product already exists"},
			handler.WithJSONStatus(http.StatusConflict),
		))

		assert.Equal(t, http.StatusConflict, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "product_exists", got.Error.Code)
	})
}

func TestRawJSON(t *testing.T) {
	t.Parallel()

	w := render(t, handler.RawJSON(
		map[string]any{"success": false},
		handler.WithJSONStatus(http.StatusForbidden),
		handler.WithJSONMeta(map[string]any{"ignored": true}),
	))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}
