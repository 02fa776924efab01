//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"order-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type EventRecorder interface {
	Record(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
