package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Delivery errors
	ErrMailDeliveryFailed = errors.New("mail delivery failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
