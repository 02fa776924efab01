package entities

import "time"

type Order struct {
	ID                string
	CustomerID        string
	RestaurantID      string
	Items             []OrderItem
	TotalAmount       float64
	Status            OrderStatusType
	AssignedCourierID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderItem struct {
	MenuItemID string
	Quantity   int
	UnitPrice  float64
}

// OrderStatusType не ограничен перечисленными значениями: смена статуса
// принимает любую строку, проверка переходов сейчас не делается.
type OrderStatusType string

const (
	OrderPending  OrderStatusType = "pending"
	OrderAssigned OrderStatusType = "assigned"
	OrderClosed   OrderStatusType = "closed"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderCreate struct {
	CustomerID   string
	RestaurantID string
	TotalAmount  float64
	Items        []OrderItem
	CreatedAt    time.Time
}

type OrderModify struct {
	ID                *string
	Status            *OrderStatusType
	AssignedCourierID *string
}
