package orders

import (
	"fmt"

	"ppo-ops/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "ORD_1000"
	codeOrderNotFound    = "ORD_1001"
	codeCustomerNotFound = "ORD_1002"

	codeInternalRecordStoreFailed = "ORD_9000"
)

// errValidationFailed returns an error for request validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errOrderNotFound returns an error when an order record does not exist.
func errOrderNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeOrderNotFound, "order not found", cause)
}

// errCustomerNotFound returns an error when an order references a missing customer.
func errCustomerNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCustomerNotFound, "customer not found", cause)
}

// errInternalRecordStoreFailed returns an error when a record store operation fails.
func errInternalRecordStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordStoreFailed, fmt.Errorf("recordStoreFailed: %w", cause))
}
