package order

import "order-service/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, entities.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return &entities.Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		RestaurantID:      o.RestaurantID,
		Items:             items,
		TotalAmount:       o.TotalAmount,
		Status:            entities.OrderStatusType(o.Status),
		AssignedCourierID: o.AssignedCourierID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromDomainItems(items []entities.OrderItem) []OrderItemDB {
	itemsDB := make([]OrderItemDB, 0, len(items))
	for _, item := range items {
		itemsDB = append(itemsDB, OrderItemDB{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return itemsDB
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:                o.ID,
		AssignedCourierID: o.AssignedCourierID,
	}
	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}
	return orderModifyDB
}
