package handler

import (
	"log/slog"
	"net/http"

	"locust/internal/domain/entity"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	PushUC usecase.PushSubscriptionUsecase
	Logger *slog.Logger
}

// PushHandler registers browsers for alert notifications.
type PushHandler struct {
	pushUC usecase.PushSubscriptionUsecase
	logger *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		pushUC: params.PushUC,
		logger: params.Logger,
	}
}

// SubscribeRequest mirrors the browser's PushSubscription JSON.
type SubscribeRequest struct {
	Endpoint string               `json:"endpoint" validate:"required,url"`
	Keys     SubscribeRequestKeys `json:"keys"`
}

// SubscribeRequestKeys holds the subscription's encryption keys.
type SubscribeRequestKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// Subscribe handles POST /api/push/subscribe.
func (h *PushHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidSubscription.WithDetails("request body must be a JSON push subscription")
	}

	if err := c.Validate(&req); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return domainerrors.ErrInvalidSubscription.WithDetails(appErr.Details())
		}

		return err
	}

	subscription := &entity.PushSubscription{
		Endpoint: req.Endpoint,
		Keys: entity.PushSubscriptionKeys{
			P256dh: req.Keys.P256dh,
			Auth:   req.Keys.Auth,
		},
	}
	if err := h.pushUC.Subscribe(c.Request().Context(), subscription); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// PublicKey handles GET /api/push/public-key.
func (h *PushHandler) PublicKey(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"publicKey": h.pushUC.PublicKey()})
}
