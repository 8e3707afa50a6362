package validator

import (
	"testing"

	domainerrors "locust/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys struct {
	Auth string `json:"auth" validate:"required"`
}

type sample struct {
	DeviceID string   `json:"deviceId" validate:"required"`
	Latitude *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Battery  *int     `json:"battery" validate:"omitempty,min=0,max=100"`
	When     string   `json:"timestamp" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Endpoint string   `json:"endpoint" validate:"omitempty,url"`
	Keys     keys     `json:"keys"`
}

func TestValidate_Valid(t *testing.T) {
	lat := 0.0
	battery := 100

	err := New().Validate(&sample{
		DeviceID: "phone-1",
		Latitude: &lat,
		Battery:  &battery,
		When:     "2026-03-01T12:00:00.123+08:00",
		Endpoint: "https://push.example.com/x",
		Keys:     keys{Auth: "a"},
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	battery := 101

	err := New().Validate(&sample{Battery: &battery, When: "yesterday", Endpoint: "not a url"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidPayload.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "deviceId is required")
	assert.Contains(t, appErr.Details(), "latitude is required")
	assert.Contains(t, appErr.Details(), "battery must be max 100")
	assert.Contains(t, appErr.Details(), "timestamp must be an RFC 3339 timestamp")
	assert.Contains(t, appErr.Details(), "endpoint must be a URL")
	assert.Contains(t, appErr.Details(), "keys.auth is required")
}
