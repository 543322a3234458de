package reports_test

import (
	"testing"
	"time"

	"ppo-ops/internal/models"
	"ppo-ops/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomers() []*models.Customer {
	return []*models.Customer{
		{ID: "c1", Name: "Alpha Traders"},
		{ID: "c2", Name: "Beta Mills"},
		{ID: "c3", Name: "Gamma Works"},
	}
}

func TestTopCustomers_RanksByCompletedRevenue(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "100", models.StatusDispatched, at),
		testOrder("c1", "50", models.StatusFulfilled, at),
		testOrder("c2", "500", models.StatusDispatched, at),
		testOrder("c3", "900", models.StatusPending, at),
	}

	rows := reports.TopCustomers(orders, testCustomers(), 10)

	require.Len(t, rows, 2)
	assert.Equal(t, "c2", rows[0].CustomerID)
	assert.Equal(t, "Beta Mills", rows[0].CustomerName)
	assert.True(t, rows[0].TotalRevenue.Equal(decimalFromString(t, "500")))
	assert.Equal(t, 1, rows[0].OrderCount)

	assert.Equal(t, "c1", rows[1].CustomerID)
	assert.True(t, rows[1].TotalRevenue.Equal(decimalFromString(t, "150")))
	assert.Equal(t, 2, rows[1].OrderCount)
}

func TestTopCustomers_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "100", models.StatusDispatched, at),
		testOrder("c2", "200", models.StatusDispatched, at),
		testOrder("c3", "300", models.StatusDispatched, at),
	}

	rows := reports.TopCustomers(orders, testCustomers(), 2)

	require.Len(t, rows, 2)
	assert.Equal(t, "c3", rows[0].CustomerID)
	assert.Equal(t, "c2", rows[1].CustomerID)
}

func TestTopCustomers_TieBreaksByCustomerID(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c2", "100", models.StatusDispatched, at),
		testOrder("c1", "100", models.StatusDispatched, at),
	}

	rows := reports.TopCustomers(orders, testCustomers(), 10)

	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].CustomerID)
	assert.Equal(t, "c2", rows[1].CustomerID)
}

func TestTopCustomers_DropsOrphanedOrders(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("gone", "999", models.StatusDispatched, at),
		testOrder("c1", "100", models.StatusDispatched, at),
	}

	rows := reports.TopCustomers(orders, testCustomers(), 10)

	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].CustomerID)
}

func TestTopCustomers_NonPositiveLimit(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "100", models.StatusDispatched, at),
	}

	assert.Empty(t, reports.TopCustomers(orders, testCustomers(), 0))
	assert.Empty(t, reports.TopCustomers(orders, testCustomers(), -3))
}
