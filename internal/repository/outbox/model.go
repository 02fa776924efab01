package outbox

import "time"

type OrderEventDB struct {
	ID          int64
	OrderID     string
	Status      string
	CourierID   *string
	CreatedAt   time.Time
	PublishedAt *time.Time
}
