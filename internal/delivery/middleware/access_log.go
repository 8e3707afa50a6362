package middleware

import (
	"log/slog"

	"locust/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// quietPaths are polled by probes and scrapers and stay out of the access log.
var quietPaths = []string{"/health", "/metrics"}

// NewAccessLogMiddleware logs one line per request, at warn for 4xx and error for 5xx.
// Debug environments also log request bodies.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestBody:  cfg.Env.Debug,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath(quietPaths...),
		},
	})
}
