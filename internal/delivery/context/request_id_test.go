package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	requestLogger := fallback.With(slog.String("request_id", "req-1"))

	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithLogger(ctx, requestLogger)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx), "setting the logger keeps the ID")
	assert.Same(t, requestLogger, GetLoggerOrDefault(ctx, fallback))

	detached := context.WithoutCancel(ctx)
	assert.Equal(t, "req-1", GetRequestIDFromContext(detached))
}

func TestEchoRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}
