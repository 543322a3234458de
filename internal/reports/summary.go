package reports

import (
	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
)

// Summary returns the all-time pending/dispatched value split across all
// orders, using normalized status.
func Summary(orders []*models.Order) models.FinancialSummary {
	return sumByReportingStatus(orders)
}

// MonthlySummary returns the pending/dispatched value split restricted to
// orders created in the given calendar (year, month), UTC.
func MonthlySummary(orders []*models.Order, year, month int) models.FinancialSummary {
	inMonth := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil || o.CreatedAt.IsZero() {
			continue
		}
		utc := o.CreatedAt.UTC()
		if utc.Year() == year && int(utc.Month()) == month {
			inMonth = append(inMonth, o)
		}
	}
	return sumByReportingStatus(inMonth)
}

func sumByReportingStatus(orders []*models.Order) models.FinancialSummary {
	summary := models.FinancialSummary{
		PendingTotal:    decimal.Zero,
		DispatchedTotal: decimal.Zero,
	}
	for _, o := range orders {
		if o == nil {
			continue
		}
		if Normalize(o.Status) == models.ReportingCompleted {
			summary.DispatchedTotal = summary.DispatchedTotal.Add(o.Value)
		} else {
			summary.PendingTotal = summary.PendingTotal.Add(o.Value)
		}
	}
	return summary
}
