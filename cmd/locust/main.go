package main

import (
	"context"
	"log/slog"
	"os"

	"locust/config"
	"locust/internal/delivery"
	"locust/internal/delivery/api"
	"locust/internal/delivery/api/middleware"
	"locust/internal/delivery/api/router/handler"
	"locust/internal/domain/service"
	"locust/internal/infra/cache"
	logs "locust/internal/infra/log"
	"locust/internal/infra/metrics"
	"locust/internal/infra/notification"
	"locust/internal/infra/persistence/postgres"
	"locust/internal/infra/pubsub"
	"locust/internal/infra/qrcode"
	"locust/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		pubsub.NewEventPublisher,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewLocationRepository,
			postgres.NewAlertRepository,
			postgres.NewPushSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newEmailSender,
			newWebPushSender,
			newFirebaseService,
			newQRCodeService,
			metrics.NewIngestMetrics,
		),
	)
}

func newEmailSender(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	return notification.NewSMTPEmailService(cfg.SMTP, logger)
}

func newWebPushSender(cfg *config.Config, logger *slog.Logger) service.WebPushSender {
	return notification.NewWebPushService(cfg.WebPush, logger)
}

// newFirebaseService creates the FCM topic mirror, or nothing when no topic is configured
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TopicNotifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.Topic == "" {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.Topic, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIngestService,
			impl.NewDashboardService,
			impl.NewDeviceService,
			impl.NewPushSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAPIKeyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIngestHandler,
			handler.NewDashboardHandler,
			handler.NewPushHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
