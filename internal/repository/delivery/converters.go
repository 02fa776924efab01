package delivery

import "order-service/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:        d.ID,
		OrderID:   d.OrderID,
		CourierID: d.CourierID,
		Status:    entities.DeliveryStatusType(d.Status),
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:        d.ID,
		OrderID:   d.OrderID,
		CourierID: d.CourierID,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}
	return deliveryModifyDB
}
