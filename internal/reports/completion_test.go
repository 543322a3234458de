package reports_test

import (
	"testing"
	"time"

	"ppo-ops/internal/models"
	"ppo-ops/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRate_RoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	march := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "100", models.StatusDispatched, march),
		testOrder("c2", "200", models.StatusFulfilled, march),
		testOrder("c3", "300", models.StatusPending, march),
	}

	rows := reports.CompletionRate(orders)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 2025, row.Year)
	assert.Equal(t, 3, row.Month)
	assert.Equal(t, 3, row.Total)
	assert.Equal(t, 2, row.Completed)
	// 2/3 rounds to 66.7
	assert.True(t, row.CompletionRate.Equal(decimalFromString(t, "66.7")), "got %s", row.CompletionRate)
}

func TestCompletionRate_AllCompleted(t *testing.T) {
	t.Parallel()

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		testOrder("c1", "100", models.StatusDispatched, jan),
	}

	rows := reports.CompletionRate(orders)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].CompletionRate.Equal(decimalFromString(t, "100")))
}

func TestCompletionRate_MultipleMonths(t *testing.T) {
	t.Parallel()

	orders := []*models.Order{
		testOrder("c1", "100", models.StatusPending, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		testOrder("c2", "100", models.StatusDispatched, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	rows := reports.CompletionRate(orders)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].CompletionRate.Equal(decimalFromString(t, "0")))
	assert.True(t, rows[1].CompletionRate.Equal(decimalFromString(t, "100")))
}
