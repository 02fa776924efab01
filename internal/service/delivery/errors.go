package delivery

import "errors"

var ErrValidation = errors.New("validation error")

var (
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidStatus     = errors.New("invalid delivery status")

	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyClaimed    = errors.New("order already claimed")
	ErrOrderNotClaimable = errors.New("order is not claimable")
	ErrDeliveryNotFound  = errors.New("delivery not found")
)
