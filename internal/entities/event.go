package entities

import "time"

// OrderEvent - запись outbox о смене состояния заказа.
type OrderEvent struct {
	ID          int64
	OrderID     string
	Status      OrderStatusType
	CourierID   *string
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func NewOrderEvent(order *Order) OrderEvent {
	return OrderEvent{
		OrderID:   order.ID,
		Status:    order.Status,
		CourierID: order.AssignedCourierID,
		CreatedAt: order.UpdatedAt,
	}
}
