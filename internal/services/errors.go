package services

import "errors"

// Error taxonomy shared by all services. Handlers classify failures with
// errors.Is and map them to HTTP responses.
var (
	// ErrValidation marks missing or malformed client input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that is absent or inactive.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a failure in the underlying storage.
	ErrPersistence = errors.New("persistence failure")

	// ErrNoOrders is the structured empty-result indicator for history
	// queries over a range with no matching orders.
	ErrNoOrders = errors.New("no orders found for the selected date range")
)
