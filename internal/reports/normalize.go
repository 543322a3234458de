package reports

import (
	"ppo-ops/internal/models"
)

// Normalize collapses a raw order status into the two-valued reporting
// status. Dispatched and the legacy Fulfilled value both count as
// Completed; every other value (including unset or unknown strings on
// partially migrated data) counts as Pending, so reporting is always
// well-defined.
func Normalize(status models.OrderStatus) models.ReportingStatus {
	switch status {
	case models.StatusDispatched, models.StatusFulfilled:
		return models.ReportingCompleted
	}
	return models.ReportingPending
}
