package reports

import (
	"fmt"

	"ppo-ops/internal/shared/svcerrors"
)

const (
	codeInvalidReportPeriod = "RPT_1000"

	codeInternalRecordStoreFailed = "RPT_9000"
)

// errInvalidReportPeriod returns an error for an out-of-range year/month selector.
func errInvalidReportPeriod(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportPeriod, msg, nil)
}

// errInternalRecordStoreFailed returns an error when loading a record snapshot fails.
func errInternalRecordStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordStoreFailed, fmt.Errorf("recordStoreFailed: %w", cause))
}
