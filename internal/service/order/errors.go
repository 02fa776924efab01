package order

import "errors"

// ErrValidation оборачивает все ошибки входных данных, транспорт отвечает на неё 400.
var ErrValidation = errors.New("validation error")

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidRestaurantID = errors.New("invalid restaurant id")
	ErrEmptyItems          = errors.New("order must contain at least one item")
	ErrInvalidMenuItemID   = errors.New("invalid menu item id")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrInvalidPrice        = errors.New("item price must be non-negative")
	ErrInvalidTotal        = errors.New("total amount must be non-negative")
	ErrInvalidStatus       = errors.New("invalid order status")

	ErrOrderNotFound = errors.New("order not found")
)
