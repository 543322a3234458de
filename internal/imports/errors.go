package imports

import (
	"fmt"

	"ppo-ops/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "IMP_1000"

	codeInternalRecordStoreFailed = "IMP_9000"
)

// errValidationFailed returns an error for unusable import payloads.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalRecordStoreFailed returns an error when a record store operation fails.
func errInternalRecordStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordStoreFailed, fmt.Errorf("recordStoreFailed: %w", cause))
}
