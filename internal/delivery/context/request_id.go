// Package context carries request-scoped values between the transport and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a caller may use to propagate its own request ID.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID stores the request ID on echo.Context for handlers and the error envelope.
const echoKeyRequestID = "request_id"

type scopeKey struct{}

// scope is immutable once stored; setters copy it.
type scope struct {
	requestID string
	logger    *slog.Logger
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// GetRequestID returns the request ID stored on c, or an empty string.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or an empty string.
// Contexts detached with context.WithoutCancel keep it.
func GetRequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = requestID

	return context.WithValue(ctx, scopeKey{}, s)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := scopeFrom(ctx).logger; logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	s := scopeFrom(ctx)
	s.logger = logger

	return context.WithValue(ctx, scopeKey{}, s)
}
