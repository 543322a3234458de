package imports

import (
	"ppo-ops/internal/shared/metrics"
)

var (
	// metricImportItemsTotal counts individual import items by result.
	metricImportItemsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubImports,
			Name:      "import_items_total",
		},
		[]string{"result"},
	)
)

const (
	resultImported = "imported"
	resultFailed   = "failed"
)
