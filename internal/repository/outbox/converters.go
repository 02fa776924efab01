package outbox

import "order-service/internal/entities"

func ToDomain(e *OrderEventDB) *entities.OrderEvent {
	if e == nil {
		return nil
	}
	return &entities.OrderEvent{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Status:      entities.OrderStatusType(e.Status),
		CourierID:   e.CourierID,
		CreatedAt:   e.CreatedAt,
		PublishedAt: e.PublishedAt,
	}
}

func FromDomain(e *entities.OrderEvent) *OrderEventDB {
	if e == nil {
		return nil
	}
	return &OrderEventDB{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Status:      e.Status.String(),
		CourierID:   e.CourierID,
		CreatedAt:   e.CreatedAt,
		PublishedAt: e.PublishedAt,
	}
}
