package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"order-service/pkg/logger"
)

// Migrate накатывает миграции из fsys поверх пула. goose работает через
// database/sql, поэтому пул оборачивается в *sql.DB. Соединения остаются
// за пулом, закрывать db не нужно.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, fsys fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.Info("Migration applied",
			logger.NewField("version", result.Source.Version),
			logger.NewField("duration", result.Duration),
		)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}
	log.Info("Database schema is up to date",
		logger.NewField("version", version),
	)
	return nil
}
