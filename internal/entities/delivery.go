package entities

import "time"

type Delivery struct {
	ID        string
	OrderID   string
	CourierID string
	Status    DeliveryStatusType
	StartTime time.Time
	EndTime   *time.Time
}

type DeliveryStatusType string

const (
	DeliveryAvailable DeliveryStatusType = "available"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryEnRoute   DeliveryStatusType = "en_route"
	DeliveryDelivered DeliveryStatusType = "delivered"
)

// Начальный статус доставки передаёт курьер при захвате заказа,
// это значение используется, если он его не указал.
const DefaultDeliveryStatus = DeliveryAvailable

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, что доставка завершена и пора проставить EndTime.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered
}

type DeliveryModify struct {
	ID        *string
	OrderID   *string
	CourierID *string
	Status    *DeliveryStatusType
	StartTime *time.Time
	EndTime   *time.Time
}

type DeliveryClaim struct {
	OrderID   string
	CourierID string
	Status    DeliveryStatusType
}

type DeliveryClaimResult struct {
	Delivery Delivery
	Order    Order
}
