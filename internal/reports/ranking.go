package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
)

type rankingAccum struct {
	revenue decimal.Decimal
	count   int
}

// TopCustomers ranks customers by revenue from completed orders, joining
// each group to the customer's display name. Orders referencing a customer
// that no longer exists are dropped rather than failing the report (the
// customer service cascade-deletes orders, so this is a defensive path).
// Ties on equal revenue break by customer ID ascending so the ranking is
// deterministic. limit <= 0 yields an empty result.
func TopCustomers(orders []*models.Order, customers []*models.Customer, limit int) []models.TopCustomerRow {
	if limit <= 0 {
		return []models.TopCustomerRow{}
	}

	names := make(map[string]string, len(customers))
	for _, c := range customers {
		if c == nil {
			continue
		}
		names[c.ID] = c.Name
	}

	grouped := make(map[string]rankingAccum)
	for _, o := range orders {
		if o == nil || o.CustomerID == "" {
			continue
		}
		if Normalize(o.Status) != models.ReportingCompleted {
			continue
		}
		acc, ok := grouped[o.CustomerID]
		if !ok {
			acc = rankingAccum{revenue: decimal.Zero}
		}
		acc.revenue = acc.revenue.Add(o.Value)
		acc.count++
		grouped[o.CustomerID] = acc
	}

	rows := make([]models.TopCustomerRow, 0, len(grouped))
	for customerID, acc := range grouped {
		name, ok := names[customerID]
		if !ok {
			// Orphaned reference: customer record is gone
			continue
		}
		rows = append(rows, models.TopCustomerRow{
			CustomerID:   customerID,
			CustomerName: name,
			TotalRevenue: acc.revenue,
			OrderCount:   acc.count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		cmp := rows[i].TotalRevenue.Cmp(rows[j].TotalRevenue)
		if cmp != 0 {
			return cmp > 0
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
