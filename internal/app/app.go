package app

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"order-service/internal/handlers/rest/customer_orders_get"
	"order-service/internal/handlers/rest/deliveries_get"
	"order-service/internal/handlers/rest/delivery_claim_post"
	"order-service/internal/handlers/rest/delivery_status_put"
	"order-service/internal/handlers/rest/order_get"
	"order-service/internal/handlers/rest/order_post"
	"order-service/internal/handlers/rest/order_status_put"
	"order-service/internal/handlers/tasks/outbox_relay"
	"order-service/internal/pkg/auth"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/middlewares/access_control"
	"order-service/internal/pkg/middlewares/authentication"
	deliveryRepo "order-service/internal/repository/delivery"
	orderRepo "order-service/internal/repository/order"
	outboxRepo "order-service/internal/repository/outbox"
	deliveryService "order-service/internal/service/delivery"
	orderService "order-service/internal/service/order"
	outboxService "order-service/internal/service/outbox"
	"order-service/pkg/background"
	"order-service/pkg/logger"
	"order-service/pkg/querier"
	"order-service/pkg/tx"
)

type Application struct {
	ServiceOrder    ServiceOrder
	ServiceDelivery ServiceDelivery
	Policy          access_control.Policy
	Verifier        authentication.Verifier
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_status_put.Service
	customer_orders_get.Service
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_claim_post.Service
	delivery_status_put.Service
}

type OutboxRelayApp struct {
	BackgroundWorkers *background.Worker
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	events orderService.EventRecorder,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, events, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	events deliveryService.EventRecorder,
	txManager deliveryService.TxManager,
) *deliveryService.Service {
	return deliveryService.New(repository, events, txManager)
}

func provideVerifier(cfg *config.Config) (*auth.Verifier, error) {
	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token verifier: %w", err)
	}
	return verifier, nil
}

func provideServiceOutbox(
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	txManager outboxService.TxManager,
	cfg *config.Config,
) (*outboxService.Service, error) {
	return outboxService.New(repository, publisher, txManager, cfg.Outbox.BatchSize)
}

func provideOutboxRelayTask(
	log logger.Logger,
	service outbox_relay.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, service, cfg.Outbox.RelayInterval)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
