package delivery

import (
	"fmt"
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

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validateClaim: id заказа не в формате UUID означает, что такого заказа нет.
func validateClaim(claim entities.DeliveryClaim) error {
	if !isValidID(claim.OrderID) {
		return ErrOrderNotFound
	}
	if isBlank(claim.CourierID) {
		return invalid(ErrInvalidCourierID)
	}
	return nil
}
