//go:build integration

package integration_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"order-service/internal/pkg/postgres"
	"order-service/migrations"
	"order-service/pkg/logger"
	"order-service/pkg/querier"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
)

// RunMain поднимает postgres в контейнере, накатывает миграции и запускает
// тесты пакета. Вызывается из TestMain.
func RunMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("orders_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres testcontainer: %v", err)
	}

	code := func() int {
		defer func() {
			if err := pgContainer.Terminate(ctx); err != nil {
				log.Printf("failed to terminate postgres container: %v", err)
			}
		}()

		dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Printf("failed to get connection string from container: %v", err)
			return 1
		}

		pool, err := postgres.NewConnPoolFromDSN(ctx, logger.NewNop(), dsn)
		if err != nil {
			log.Printf("failed to create pgx pool: %v", err)
			return 1
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, logger.NewNop(), pool, migrations.FS); err != nil {
			log.Printf("failed to apply migrations: %v", err)
			return 1
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)

		return m.Run()
	}()

	os.Exit(code)
}

func GetPool() *pgxpool.Pool {
	return poolInstance
}

func GetQuerier() *querier.Querier {
	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_events, deliveries, orders RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
