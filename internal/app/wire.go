//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"order-service/internal/handlers/tasks/outbox_relay"
	"order-service/internal/pkg/auth"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/kafka"
	"order-service/internal/pkg/middlewares/access_control"
	"order-service/internal/pkg/middlewares/authentication"
	deliveryRepo "order-service/internal/repository/delivery"
	orderRepo "order-service/internal/repository/order"
	outboxRepo "order-service/internal/repository/outbox"
	"order-service/internal/service/access"
	deliveryService "order-service/internal/service/delivery"
	orderService "order-service/internal/service/order"
	outboxService "order-service/internal/service/outbox"

	"order-service/pkg/logger"
	"order-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideDeliveryRepository,
		provideOutboxRepository,

		provideServiceOrder,
		provideServiceDelivery,
		access.New,
		provideVerifier,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Service)),
		wire.Bind(new(access_control.Policy), new(*access.Policy)),
		wire.Bind(new(authentication.Verifier), new(*auth.Verifier)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventRecorder), new(*outboxRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.EventRecorder), new(*outboxRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

// InitializeOutboxRelayApp для воркера outbox (cmd/worker-outbox-relay)
func InitializeOutboxRelayApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*OutboxRelayApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOutboxRepository,
		provideServiceOutbox,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(OutboxRelayApp), "*"),

		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outbox_relay.Service), new(*outboxService.Service)),
	)
	return &OutboxRelayApp{}, nil
}
