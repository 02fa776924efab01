package order

import (
	"context"
	"fmt"
	"time"

	"order-service/internal/entities"
)

type Service struct {
	repository Repository
	events     EventRecorder
	txManager  TxManager
}

func New(repository Repository, events EventRecorder, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		events:     events,
		txManager:  txManager,
	}
}

func (s *Service) PlaceOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	orderCreate.CreatedAt = time.Now().UTC()

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.Create(ctx, orderCreate)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := s.events.Record(ctx, entities.NewOrderEvent(order)); err != nil {
			return fmt.Errorf("record order event: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetOrder: id, который не разбирается как UUID, не может существовать
// в базе, поэтому для него сразу ErrOrderNotFound.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrOrderNotFound
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// UpdateOrderStatus перезаписывает статус как есть, без проверки допустимости
// перехода: закрыть можно и заказ без курьера. Повторный вызов с тем же
// статусом даёт тот же результат. Read committed: конкурентные записи
// в ту же строку ждут блокировку, а не падают с 40001.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrOrderNotFound
	}
	if isBlank(status.String()) {
		return nil, invalid(ErrInvalidStatus)
	}

	var updated *entities.Order
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if err := s.events.Record(ctx, entities.NewOrderEvent(order)); err != nil {
			return fmt.Errorf("record order event: %w", err)
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	if isBlank(customerID) {
		return nil, invalid(ErrInvalidCustomerID)
	}

	orders, err := s.repository.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer orders: %w", err)
	}
	return orders, nil
}
