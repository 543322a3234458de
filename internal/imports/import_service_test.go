package imports_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ppo-ops/internal/imports"
	"ppo-ops/internal/models"
	"ppo-ops/internal/orders"
	"ppo-ops/internal/payments"
	"ppo-ops/internal/shared/filestorages"
	"ppo-ops/internal/shared/validators"
	"ppo-ops/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type importFixture struct {
	customerStore stores.CustomerStore
	orderStore    stores.OrderStore
	service       imports.ImportService
}

func newImportFixture(t *testing.T) *importFixture {
	t.Helper()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	customerStore := stores.NewCustomerStore(storage)
	orderStore := stores.NewOrderStore(storage)
	validate := validators.New()
	classifier := payments.NewClassifier(0, 0)

	orderService := orders.NewOrderService(orderStore, customerStore, validate, classifier)

	return &importFixture{
		customerStore: customerStore,
		orderStore:    orderStore,
		service:       imports.NewImportService(customerStore, orderService),
	}
}

func TestImportBatch_RegistersCustomerAndOrder(t *testing.T) {
	t.Parallel()

	f := newImportFixture(t)
	ctx := context.Background()

	body := bytes.NewReader([]byte(`[
		{"name":"Alpha Traders","phone":"0123456789","address":"12 Mill Road","ppoValue":"150.50","ppoType":"Fabric"}
	]`))

	result, svcErr := f.service.ImportBatch(ctx, body)

	require.Nil(t, svcErr)
	assert.Equal(t, 1, result.ImportedCount)
	assert.Equal(t, 0, result.FailedCount)

	customer, err := f.customerStore.FindByPhone(ctx, "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Traders", customer.Name)

	ordersForCustomer, err := f.orderStore.ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, ordersForCustomer, 1)
	assert.Equal(t, models.StatusPending, ordersForCustomer[0].Status)
	assert.Equal(t, models.DefaultPaymentTermDays, ordersForCustomer[0].PaymentTermDays)
}

func TestImportBatch_CustomerOnlyRows(t *testing.T) {
	t.Parallel()

	f := newImportFixture(t)
	ctx := context.Background()

	// Rows without order data register the customer alone; address is
	// optional on import and defaults to empty.
	body := bytes.NewReader([]byte(`[
		{"name":"Alpha Traders","phone":"0123456789","address":"12 Mill Road"},
		{"name":"Beta Mills","phone":"0987654321"}
	]`))

	result, svcErr := f.service.ImportBatch(ctx, body)

	require.Nil(t, svcErr)
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, 0, result.FailedCount)

	alpha, err := f.customerStore.FindByPhone(ctx, "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "12 Mill Road", alpha.Address)

	beta, err := f.customerStore.FindByPhone(ctx, "0987654321")
	require.NoError(t, err)
	assert.Equal(t, "Beta Mills", beta.Name)
	assert.Empty(t, beta.Address)

	for _, customer := range []*models.Customer{alpha, beta} {
		ordersForCustomer, err := f.orderStore.ListByCustomer(ctx, customer.ID)
		require.NoError(t, err)
		assert.Empty(t, ordersForCustomer)
	}
}

func TestImportBatch_ReusesCustomerByPhone(t *testing.T) {
	t.Parallel()

	f := newImportFixture(t)
	ctx := context.Background()

	body := bytes.NewReader([]byte(`[
		{"name":"Alpha Traders","phone":"0123456789","address":"12 Mill Road","ppoValue":"100","ppoType":"Fabric"},
		{"name":"Alpha Renamed","phone":"0123456789","address":"Elsewhere","ppoValue":"200","ppoType":"Yarn"}
	]`))

	result, svcErr := f.service.ImportBatch(ctx, body)

	require.Nil(t, svcErr)
	assert.Equal(t, 2, result.ImportedCount)

	all, err := f.customerStore.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "second row must reuse the customer matched by phone")
	assert.Equal(t, "Alpha Traders", all[0].Name)

	ordersForCustomer, err := f.orderStore.ListByCustomer(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Len(t, ordersForCustomer, 2)
}

func TestImportBatch_CollectsPerItemFailures(t *testing.T) {
	t.Parallel()

	f := newImportFixture(t)
	ctx := context.Background()

	body := bytes.NewReader([]byte(`[
		{"name":"Good","phone":"0123456789","address":"12 Mill Road","ppoValue":"100","ppoType":"Fabric"},
		{"name":"No Phone","address":"Nowhere","ppoValue":"100","ppoType":"Fabric"},
		{"name":"Bad Term","phone":"0987654321","address":"13 Mill Road","ppoValue":"100","ppoType":"Fabric","paymentTermDays":45}
	]`))

	result, svcErr := f.service.ImportBatch(ctx, body)

	require.Nil(t, svcErr)
	assert.Equal(t, 1, result.ImportedCount)
	assert.Equal(t, 2, result.FailedCount)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, 1, result.Failures[0].Index)
	assert.Equal(t, 2, result.Failures[1].Index)
	assert.Equal(t, "0987654321", result.Failures[1].Phone)
}

func TestImportBatch_ErrValidationFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{not json}`},
		{name: "object instead of array", body: `{"name":"x"}`},
		{name: "empty array", body: `[]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newImportFixture(t)
			result, svcErr := f.service.ImportBatch(context.Background(), strings.NewReader(tt.body))

			require.NotNil(t, svcErr)
			assert.Equal(t, "IMP_1000", svcErr.Code)
			assert.Nil(t, result)
		})
	}
}

func TestImportBatch_ErrTooLarge(t *testing.T) {
	t.Parallel()

	f := newImportFixture(t)

	large := bytes.NewReader(make([]byte, 2*1024*1024+1))
	result, svcErr := f.service.ImportBatch(context.Background(), large)

	require.NotNil(t, svcErr)
	assert.Equal(t, "IMP_1000", svcErr.Code)
	assert.Equal(t, "import too large: must be <= 2MB", svcErr.Message)
	assert.Nil(t, result)
}
