package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reviewer/pkg/logger"
	"github.com/dmitrymomot/reviewer/pkg/validator"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
}

func TestValidators(t *testing.T) {
	attr := logger.Validators("product.create", "product.create.duplicate")
	require.Equal(t, "validators", attr.Key)
	assert.Equal(t, []string{"product.create", "product.create.duplicate"}, attr.Value.Any())
}

func TestShape(t *testing.T) {
	attr := logger.Shape("product.CreateRequest")
	require.Equal(t, "shape", attr.Key)
	assert.Equal(t, "product.CreateRequest", attr.Value.String())
}

func TestFailures(t *testing.T) {
	failures := validator.Failures{
		{Field: "Name", Code: "NotEmpty", Message: "name required"},
		{Field: "Price", Code: "GreaterThan", Message: "too low"},
	}

	attr := logger.Failures(failures)
	require.Equal(t, "failures", attr.Key)

	resolved := attr.Value.Resolve()
	require.Equal(t, slog.KindGroup, resolved.Kind())
	g := resolved.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "Name: name required", g[0].Value.String())
	assert.Equal(t, "Price: too low", g[1].Value.String())

	empty := logger.Failures(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestStatus(t *testing.T) {
	attr := logger.Status(403)
	require.Equal(t, "status", attr.Key)
	assert.Equal(t, int64(403), attr.Value.Int64())
}
