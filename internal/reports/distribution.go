package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
)

// StatusDistribution groups orders by their raw status value, on purpose
// without normalization: legacy Fulfilled records surface as their own
// group, keeping data-quality issues visible in this one view. Every other
// report normalizes. Output is sorted by status for determinism.
func StatusDistribution(orders []*models.Order) []models.StatusDistributionRow {
	type distAccum struct {
		count int
		total decimal.Decimal
	}

	grouped := make(map[string]distAccum)
	for _, o := range orders {
		if o == nil {
			continue
		}
		status := string(o.Status)
		acc, ok := grouped[status]
		if !ok {
			acc = distAccum{total: decimal.Zero}
		}
		acc.count++
		acc.total = acc.total.Add(o.Value)
		grouped[status] = acc
	}

	rows := make([]models.StatusDistributionRow, 0, len(grouped))
	for status, acc := range grouped {
		rows = append(rows, models.StatusDistributionRow{
			Status:     status,
			Count:      acc.count,
			TotalValue: acc.total,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Status < rows[j].Status })
	return rows
}
