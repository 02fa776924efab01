//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"order-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)

	GetClaimableOrders(ctx context.Context) ([]entities.Order, error)
	AssignOrder(ctx context.Context, orderID, courierID string) (*entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
}

type EventRecorder interface {
	Record(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
