package order

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"order-service/internal/entities"
)

func invalid(reason error) error {
	return fmt.Errorf("%w: %w", ErrValidation, reason)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidOrderID(orderID string) bool {
	_, err := uuid.Parse(orderID)
	return err == nil
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func validateOrderCreate(orderCreate entities.OrderCreate) error {
	if isBlank(orderCreate.CustomerID) {
		return invalid(ErrInvalidCustomerID)
	}
	if isBlank(orderCreate.RestaurantID) {
		return invalid(ErrInvalidRestaurantID)
	}
	if !isNonNegative(orderCreate.TotalAmount) {
		return invalid(ErrInvalidTotal)
	}
	if len(orderCreate.Items) == 0 {
		return invalid(ErrEmptyItems)
	}

	for i, item := range orderCreate.Items {
		switch {
		case isBlank(item.MenuItemID):
			return invalid(fmt.Errorf("item %d: %w", i, ErrInvalidMenuItemID))
		case item.Quantity <= 0:
			return invalid(fmt.Errorf("item %d: %w", i, ErrInvalidQuantity))
		case !isNonNegative(item.UnitPrice):
			return invalid(fmt.Errorf("item %d: %w", i, ErrInvalidPrice))
		}
	}

	return nil
}
