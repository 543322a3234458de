package orders

import (
	"ppo-ops/internal/shared/metrics"
)

var (
	// metricOrderCreatedTotal counts order creation attempts by outcome.
	// error_code is empty on success.
	metricOrderCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubOrders,
			Name:      "order_created_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricOrderStatusUpdatedTotal counts status changes by target status.
	metricOrderStatusUpdatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubOrders,
			Name:      "order_status_updated_total",
		},
		[]string{"status"},
	)
)
