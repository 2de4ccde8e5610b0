package orders

import "errors"

var (
	// ErrInvalidOrderID is returned for ids that are not UUIDs
	ErrInvalidOrderID = errors.New("invalid order id")
	// ErrOrderNotFound is returned when the order is not in the expected local list
	ErrOrderNotFound = errors.New("order not found")
)
