package reports

import (
	"ppo-ops/internal/shared/metrics"
)

// metricReportGeneratedTotal counts generated reports by report kind.
// The report label is one of the report* constants in report_service.go.
var (
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReports,
			Name:      "report_generated_total",
		},
		[]string{"report"},
	)
)
