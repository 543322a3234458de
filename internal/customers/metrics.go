package customers

import (
	"ppo-ops/internal/shared/metrics"
)

var (
	// metricCustomerRegisteredTotal counts registration attempts by outcome.
	// error_code is empty on success.
	metricCustomerRegisteredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCustomers,
			Name:      "customer_registered_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricCustomerDeletedTotal counts customer deletions (cascading order
	// deletion included).
	metricCustomerDeletedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCustomers,
			Name:      "customer_deleted_total",
		},
		[]string{},
	)
)
