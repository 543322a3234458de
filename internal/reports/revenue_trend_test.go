package reports_test

import (
	"testing"
	"time"

	"ppo-ops/internal/models"
	"ppo-ops/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueTrend_CompletedOrdersOnly(t *testing.T) {
	t.Parallel()

	march := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "100", models.StatusDispatched, march),
		testOrder("c2", "200", models.StatusPending, march),
		testOrder("c3", "300", models.StatusDispatched, march.AddDate(0, 0, 3)),
	}

	rows := reports.RevenueTrend(orders)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 2025, row.Year)
	assert.Equal(t, 3, row.Month)
	assert.True(t, row.TotalRevenue.Equal(decimalFromString(t, "400")), "got %s", row.TotalRevenue)
	assert.Equal(t, 2, row.OrderCount)
	assert.True(t, row.AvgOrderValue.Equal(decimalFromString(t, "200")), "got %s", row.AvgOrderValue)
}

func TestRevenueTrend_FractionalValues(t *testing.T) {
	t.Parallel()

	jan := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "0.1", models.StatusDispatched, jan),
		testOrder("c2", "0.2", models.StatusDispatched, jan),
	}

	rows := reports.RevenueTrend(orders)

	require.Len(t, rows, 1)
	// Decimal arithmetic keeps 0.1 + 0.2 exact.
	assert.True(t, rows[0].TotalRevenue.Equal(decimalFromString(t, "0.3")), "got %s", rows[0].TotalRevenue)
	assert.True(t, rows[0].AvgOrderValue.Equal(decimalFromString(t, "0.15")), "got %s", rows[0].AvgOrderValue)
}

func TestRevenueTrend_NoCompletedOrders(t *testing.T) {
	t.Parallel()

	orders := []*models.Order{
		testOrder("c1", "100", models.StatusPending, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Empty(t, reports.RevenueTrend(orders))
}
