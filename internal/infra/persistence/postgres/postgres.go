package postgres

import (
	"context"
	"log/slog"

	"locust/config"
	domainerrors "locust/internal/domain/errors"
	"locust/internal/domain/lifecycle"
	"locust/internal/infra/metrics"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const dbStatsName = "postgres_primary"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry `optional:"true"`
}

// New opens the shared PostgreSQL handle, migrates the schema on start and
// exports pool statistics when a metrics registry is available.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.WithStack(domainerrors.ErrDatabaseNotConfigured)
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PostgreSQL")
	}

	// Multi-statement atomicity comes from TransactionManager.Execute only.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB, dbStatsName); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			params.Logger.Info("PostgreSQL connected", slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections))

			return Migrate(ctx, db)
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
