package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
)

type revenueAccum struct {
	sum   decimal.Decimal
	count int
}

// RevenueTrend computes per-month revenue totals, order counts, and
// average order value over completed orders only. Sums use decimal
// arithmetic; the average is computed once per bucket from the final sum
// and count (a zero count yields a zero average, never a division error).
func RevenueTrend(orders []*models.Order) []models.RevenueTrendRow {
	completed := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		if Normalize(o.Status) != models.ReportingCompleted {
			continue
		}
		completed = append(completed, o)
	}

	buckets := BucketByMonth(completed,
		func(o *models.Order) time.Time { return o.CreatedAt },
		func() revenueAccum { return revenueAccum{sum: decimal.Zero} },
		func(acc revenueAccum, o *models.Order) revenueAccum {
			acc.sum = acc.sum.Add(o.Value)
			acc.count++
			return acc
		},
	)

	rows := make([]models.RevenueTrendRow, 0, len(buckets))
	for _, b := range buckets {
		avg := decimal.Zero
		if b.Value.count > 0 {
			avg = b.Value.sum.Div(decimal.NewFromInt(int64(b.Value.count)))
		}
		rows = append(rows, models.RevenueTrendRow{
			Year:          b.Key.Year,
			Month:         b.Key.Month,
			TotalRevenue:  b.Value.sum,
			OrderCount:    b.Value.count,
			AvgOrderValue: avg,
		})
	}
	return rows
}
