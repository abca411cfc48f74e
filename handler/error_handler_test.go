package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reviewer/handler"
	"github.com/dmitrymomot/reviewer/pkg/requestid"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req = req.WithContext(requestid.WithContext(req.Context(), "req-123"))
	w := httptest.NewRecorder()

	handler.NewErrorHandler(log)(handler.NewContext(w, req), err)
	return w, logs.String()
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("generic error hides its text", func(t *testing.T) {
		t.Parallel()
		w, logs := runErrorHandler(t, errors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "internal_server_error", got.Error.Code)
		assert.Equal(t, "Internal Server Error", got.Error.Message)
		assert.NotContains(t, w.Body.String(), "database exploded")

		assert.Contains(t, logs, `"level":"ERROR"`)
		assert.Contains(t, logs, `"request_id":"req-123"`)
		assert.Contains(t, logs, "database exploded")
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w, logs := runErrorHandler(t, fmt.Errorf("decode: %w", handler.ErrUnsupportedMediaType))

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "unsupported_media_type", got.Error.Code)
		assert.Contains(t, logs, `"level":"WARN"`)
	})

	t.Run("validation failures keep details", func(t *testing.T) {
		t.Parallel()
		failures := validator.Failures{{Field: "Name", Code: "NotEmpty", Message: "This my custom name error"}}
		w, _ := runErrorHandler(t, failures)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "validation_error", got.Error.Code)
		assert.Equal(t, map[string][]string{"Name": {"This my custom name error"}}, got.Error.Details)
	})

	t.Run("validation error wins over http error", func(t *testing.T) {
		t.Parallel()
		valErr := handler.NewValidationError()
		valErr.Add("Price", "too low")
		w, _ := runErrorHandler(t, errors.Join(handler.ErrUnprocessableEntity, valErr))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		got := decodeEnvelope(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, map[string][]string{"Price": {"too low"}}, got.Error.Details)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		ctx := handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotPanics(t, func() {
			handler.NewErrorHandler(nil)(ctx, handler.ErrNotFound)
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
