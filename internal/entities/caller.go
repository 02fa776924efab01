package entities

type Role string

const (
	RoleAdmin             Role = "admin"
	RoleCustomer          Role = "customer"
	RoleRestaurantOwner   Role = "restaurant_owner"
	RoleDeliveryPersonnel Role = "delivery_personnel"
)

func (r Role) String() string {
	return string(r)
}

// Caller - проверенный вызывающий, которого транспорт передаёт в ядро.
type Caller struct {
	ID   string
	Role Role
}
