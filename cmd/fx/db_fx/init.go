package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"trivia/internal/config"
	"trivia/internal/infra"
	"trivia/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideStore)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.Ping(ctx, db); err != nil {
				// Requests will answer 503 until the database comes back.
				logger.Warn("database not reachable at startup", zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}

func provideStore(db *gorm.DB) repositories.Store {
	return repositories.NewStore(db)
}
