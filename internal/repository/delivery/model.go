package delivery

import "time"

type DeliveryDB struct {
	ID        string
	OrderID   string
	CourierID string
	Status    string
	StartTime time.Time
	EndTime   *time.Time
}

type DeliveryModifyDB struct {
	ID        *string
	OrderID   *string
	CourierID *string
	Status    *string
	StartTime *time.Time
	EndTime   *time.Time
}
