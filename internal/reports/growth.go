package reports

import (
	"time"

	"ppo-ops/internal/models"
)

// CustomerGrowth counts newly registered customers per calendar month.
func CustomerGrowth(customers []*models.Customer) []models.MonthlyGrowthRow {
	buckets := BucketByMonth(customers,
		func(c *models.Customer) time.Time {
			if c == nil {
				return time.Time{}
			}
			return c.CreatedAt
		},
		func() int { return 0 },
		func(acc int, _ *models.Customer) int { return acc + 1 },
	)

	rows := make([]models.MonthlyGrowthRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, models.MonthlyGrowthRow{
			Year:         b.Key.Year,
			Month:        b.Key.Month,
			NewCustomers: b.Value,
		})
	}
	return rows
}

// CustomersServed counts, per month, the distinct customers that had at
// least one completed order created in that month.
func CustomersServed(orders []*models.Order) []models.CustomersServedRow {
	served := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil || o.CustomerID == "" {
			continue
		}
		if Normalize(o.Status) != models.ReportingCompleted {
			continue
		}
		served = append(served, o)
	}

	buckets := BucketByMonth(served,
		func(o *models.Order) time.Time { return o.CreatedAt },
		func() map[string]struct{} { return make(map[string]struct{}) },
		func(acc map[string]struct{}, o *models.Order) map[string]struct{} {
			acc[o.CustomerID] = struct{}{}
			return acc
		},
	)

	rows := make([]models.CustomersServedRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, models.CustomersServedRow{
			Year:  b.Key.Year,
			Month: b.Key.Month,
			Count: len(b.Value),
		})
	}
	return rows
}
