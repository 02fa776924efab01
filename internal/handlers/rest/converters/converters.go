package converters

import (
	"order-service/internal/entities"
	"order-service/internal/generated/dto"
)

func OrderToDTO(order *entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItem{
			MenuItemId: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return dto.Order{
		Id:                order.ID,
		CustomerId:        order.CustomerID,
		RestaurantId:      order.RestaurantID,
		Items:             items,
		TotalAmount:       order.TotalAmount,
		Status:            dto.OrderStatus(order.Status),
		AssignedCourierId: order.AssignedCourierID,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

// OrdersToDTO никогда не возвращает nil, пустой список уходит как [].
func OrdersToDTO(orders []entities.Order) dto.OrderList {
	result := make(dto.OrderList, 0, len(orders))
	for i := range orders {
		result = append(result, OrderToDTO(&orders[i]))
	}
	return result
}

func OrderCreateFromDTO(orderCreate dto.OrderCreate) entities.OrderCreate {
	items := make([]entities.OrderItem, 0, len(orderCreate.Items))
	for _, item := range orderCreate.Items {
		items = append(items, entities.OrderItem{
			MenuItemID: item.MenuItemId,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return entities.OrderCreate{
		CustomerID:   orderCreate.CustomerId,
		RestaurantID: orderCreate.RestaurantId,
		TotalAmount:  orderCreate.TotalAmount,
		Items:        items,
	}
}

func DeliveryToDTO(delivery *entities.Delivery) dto.Delivery {
	return dto.Delivery{
		Id:        delivery.ID,
		OrderId:   delivery.OrderID,
		CourierId: delivery.CourierID,
		Status:    dto.DeliveryStatus(delivery.Status),
		StartTime: delivery.StartTime,
		EndTime:   delivery.EndTime,
	}
}
