package customers

import (
	"fmt"

	"ppo-ops/internal/shared/svcerrors"
)

const (
	codeValidationFailed       = "CUS_1000"
	codePhoneAlreadyRegistered = "CUS_1001"
	codeCustomerNotFound       = "CUS_1002"

	codeInternalRecordStoreFailed = "CUS_9000"
)

// errValidationFailed returns an error for request validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errPhoneAlreadyRegistered returns an error when a phone number is already taken.
func errPhoneAlreadyRegistered(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codePhoneAlreadyRegistered, "customer with this phone number already exists", cause)
}

// errCustomerNotFound returns an error when a customer record does not exist.
func errCustomerNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCustomerNotFound, "customer not found", cause)
}

// errInternalRecordStoreFailed returns an error when a record store operation fails.
func errInternalRecordStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordStoreFailed, fmt.Errorf("recordStoreFailed: %w", cause))
}
