// Package middleware holds echo middleware specific to the HTTP API.
package middleware

import (
	"crypto/subtle"

	"locust/config"
	domainerrors "locust/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderAPIKey carries the shared ingest secret.
const HeaderAPIKey = "x-api-key"

// APIKeyMiddleware guards device-facing routes with the shared ingest key.
type APIKeyMiddleware struct {
	apiKey []byte
}

// NewAPIKeyMiddleware is the constructor for APIKeyMiddleware.
func NewAPIKeyMiddleware(cfg *config.Config) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKey: []byte(cfg.Ingest.APIKey)}
}

// Authenticate rejects the request before the handler runs. An unset key is a
// server misconfiguration and fails every request rather than opening the route.
func (m *APIKeyMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if len(m.apiKey) == 0 {
			return domainerrors.ErrIngestNotConfigured
		}

		presented := []byte(c.Request().Header.Get(HeaderAPIKey))
		if subtle.ConstantTimeCompare(presented, m.apiKey) != 1 {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
