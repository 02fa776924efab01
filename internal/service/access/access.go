package access

import (
	"errors"

	"order-service/internal/entities"
)

var ErrAccessDenied = errors.New("access denied")

type Operation string

const (
	PlaceOrder              Operation = "place_order"
	GetOrder                Operation = "get_order"
	UpdateOrderStatus       Operation = "update_order_status"
	ListCustomerOrders      Operation = "list_customer_orders"
	ListClaimableDeliveries Operation = "list_claimable_deliveries"
	ClaimDelivery           Operation = "claim_delivery"
	UpdateDeliveryStatus    Operation = "update_delivery_status"
)

func (o Operation) String() string {
	return string(o)
}

// Таблица ролей. Владение записью не проверяется: покупатель может
// прочитать любой заказ по id. Если понадобится ограничение по владельцу,
// его стоит добавить отдельной политикой, а не сюда.
var defaultTable = map[Operation][]entities.Role{
	PlaceOrder:              {entities.RoleAdmin, entities.RoleCustomer, entities.RoleRestaurantOwner},
	GetOrder:                {entities.RoleAdmin, entities.RoleCustomer, entities.RoleRestaurantOwner},
	UpdateOrderStatus:       {entities.RoleAdmin, entities.RoleRestaurantOwner},
	ListCustomerOrders:      {entities.RoleAdmin, entities.RoleCustomer},
	ListClaimableDeliveries: {entities.RoleAdmin, entities.RoleDeliveryPersonnel},
	ClaimDelivery:           {entities.RoleAdmin, entities.RoleDeliveryPersonnel},
	UpdateDeliveryStatus:    {entities.RoleAdmin, entities.RoleDeliveryPersonnel},
}

type Policy struct {
	allowed map[Operation]map[entities.Role]struct{}
}

func New() *Policy {
	allowed := make(map[Operation]map[entities.Role]struct{}, len(defaultTable))
	for op, roles := range defaultTable {
		set := make(map[entities.Role]struct{}, len(roles))
		for _, role := range roles {
			set[role] = struct{}{}
		}
		allowed[op] = set
	}
	return &Policy{allowed: allowed}
}

// Check возвращает ErrAccessDenied для любой пары, которой нет в таблице,
// включая неизвестные роли и операции.
func (p *Policy) Check(role entities.Role, op Operation) error {
	if _, ok := p.allowed[op][role]; ok {
		return nil
	}
	return ErrAccessDenied
}

// Operations перечисляет все известные операции.
func (p *Policy) Operations() []Operation {
	ops := make([]Operation, 0, len(p.allowed))
	for op := range p.allowed {
		ops = append(ops, op)
	}
	return ops
}
