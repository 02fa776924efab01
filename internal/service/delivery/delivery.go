package delivery

import (
	"context"
	"errors"
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

// ListClaimable возвращает заказы, которые курьер может взять:
// в статусе pending и без назначенного курьера.
func (s *Service) ListClaimable(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetClaimableOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("get claimable orders: %w", err)
	}
	return orders, nil
}

// Claim закрепляет заказ за курьером. Условный UPDATE заказа, вставка
// доставки и событие outbox идут одной транзакцией, поэтому из двух
// конкурентных захватов проходит ровно один.
func (s *Service) Claim(ctx context.Context, claim entities.DeliveryClaim) (*entities.DeliveryClaimResult, error) {
	result, err := s.claim(ctx, claim)
	ClaimsTotal.WithLabelValues(claimOutcome(err)).Inc()
	return result, err
}

func (s *Service) claim(ctx context.Context, claim entities.DeliveryClaim) (*entities.DeliveryClaimResult, error) {
	if err := validateClaim(claim); err != nil {
		return nil, err
	}
	if isBlank(claim.Status.String()) {
		claim.Status = entities.DefaultDeliveryStatus
	}

	var result *entities.DeliveryClaimResult
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repository.AssignOrder(ctx, claim.OrderID, claim.CourierID)
		if errors.Is(err, ErrOrderNotClaimable) {
			return s.whyNotClaimable(ctx, claim.OrderID)
		}
		if err != nil {
			return fmt.Errorf("assign order: %w", err)
		}

		startTime := time.Now().UTC()
		delivery, err := s.repository.Create(ctx, entities.DeliveryModify{
			OrderID:   &claim.OrderID,
			CourierID: &claim.CourierID,
			Status:    &claim.Status,
			StartTime: &startTime,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if err := s.events.Record(ctx, entities.NewOrderEvent(order)); err != nil {
			return fmt.Errorf("record order event: %w", err)
		}

		result = &entities.DeliveryClaimResult{
			Delivery: *delivery,
			Order:    *order,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// whyNotClaimable различает причины, по которым условный UPDATE не задел строку.
func (s *Service) whyNotClaimable(ctx context.Context, orderID string) error {
	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if order.AssignedCourierID != nil {
		return ErrAlreadyClaimed
	}
	return ErrOrderNotClaimable
}

// UpdateDeliveryStatus перезаписывает статус без проверки перехода.
// Для delivered проставляется время окончания.
func (s *Service) UpdateDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatusType) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrDeliveryNotFound
	}
	if isBlank(status.String()) {
		return nil, invalid(ErrInvalidStatus)
	}

	deliveryModify := entities.DeliveryModify{
		ID:     &deliveryID,
		Status: &status,
	}
	if status.IsTerminal() {
		endTime := time.Now().UTC()
		deliveryModify.EndTime = &endTime
	}

	delivery, err := s.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery status: %w", err)
	}
	return delivery, nil
}
