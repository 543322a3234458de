package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
)

type completionAccum struct {
	total     int
	completed int
}

var oneHundred = decimal.NewFromInt(100)

// CompletionRate computes, per month, how many orders exist, how many are
// completed (normalized status), and the completion percentage rounded to
// one decimal place. Zero-count months are never emitted, so the rate is
// never computed against a zero denominator; the guard stays anyway.
func CompletionRate(orders []*models.Order) []models.CompletionRateRow {
	buckets := BucketByMonth(orders,
		func(o *models.Order) time.Time {
			if o == nil {
				return time.Time{}
			}
			return o.CreatedAt
		},
		func() completionAccum { return completionAccum{} },
		func(acc completionAccum, o *models.Order) completionAccum {
			acc.total++
			if Normalize(o.Status) == models.ReportingCompleted {
				acc.completed++
			}
			return acc
		},
	)

	rows := make([]models.CompletionRateRow, 0, len(buckets))
	for _, b := range buckets {
		rate := decimal.Zero
		if b.Value.total > 0 {
			rate = decimal.NewFromInt(int64(b.Value.completed)).
				Mul(oneHundred).
				Div(decimal.NewFromInt(int64(b.Value.total))).
				Round(1)
		}
		rows = append(rows, models.CompletionRateRow{
			Year:           b.Key.Year,
			Month:          b.Key.Month,
			Total:          b.Value.total,
			Completed:      b.Value.completed,
			CompletionRate: rate,
		})
	}
	return rows
}
