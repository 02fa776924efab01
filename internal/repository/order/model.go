package order

import "time"

type OrderDB struct {
	ID                string
	CustomerID        string
	RestaurantID      string
	Items             []OrderItemDB
	TotalAmount       float64
	Status            string
	AssignedCourierID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItemDB хранится в колонке items (JSONB).
type OrderItemDB struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type OrderModifyDB struct {
	ID                *string
	Status            *string
	AssignedCourierID *string
}
