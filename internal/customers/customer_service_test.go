package customers_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ppo-ops/internal/customers"
	"ppo-ops/internal/models"
	"ppo-ops/internal/shared/validators"
	"ppo-ops/internal/stores"
	storemocks "ppo-ops/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	customerStore *storemocks.MockCustomerStore
	orderStore    *storemocks.MockOrderStore
	service       customers.CustomerService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	customerStore := storemocks.NewMockCustomerStore(ctrl)
	orderStore := storemocks.NewMockOrderStore(ctrl)
	return &serviceFixture{
		customerStore: customerStore,
		orderStore:    orderStore,
		service:       customers.NewCustomerService(customerStore, orderStore, validators.New()),
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.customerStore.EXPECT().FindByPhone(ctx, "0123456789").Return(nil, stores.ErrCustomerNotFound)
	f.customerStore.EXPECT().Put(ctx, gomock.Any()).Return(nil)

	customer, svcErr := f.service.Register(ctx, &customers.RegisterCustomerRequest{
		Name:    "  Alpha Traders  ",
		Phone:   " 0123456789 ",
		Address: "12 Mill Road",
	})

	require.Nil(t, svcErr)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Alpha Traders", customer.Name, "name must be trimmed")
	assert.Equal(t, "0123456789", customer.Phone)
	assert.False(t, customer.CreatedAt.IsZero())
}

func TestRegister_ErrValidationFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *customers.RegisterCustomerRequest
	}{
		{
			name: "missing name",
			req:  &customers.RegisterCustomerRequest{Phone: "0123456789", Address: "a"},
		},
		{
			name: "phone too short",
			req:  &customers.RegisterCustomerRequest{Name: "A", Phone: "12345", Address: "a"},
		},
		{
			name: "missing address",
			req:  &customers.RegisterCustomerRequest{Name: "A", Phone: "0123456789"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFixture(t)
			customer, svcErr := f.service.Register(context.Background(), tt.req)

			require.NotNil(t, svcErr)
			assert.Equal(t, "CUS_1000", svcErr.Code)
			assert.Nil(t, customer)
		})
	}
}

func TestRegister_ErrPhoneAlreadyRegistered(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.customerStore.EXPECT().FindByPhone(ctx, "0123456789").
		Return(&models.Customer{ID: "existing", Phone: "0123456789"}, nil)

	customer, svcErr := f.service.Register(ctx, &customers.RegisterCustomerRequest{
		Name:    "Alpha",
		Phone:   "0123456789",
		Address: "12 Mill Road",
	})

	require.NotNil(t, svcErr)
	assert.Equal(t, "CUS_1001", svcErr.Code)
	assert.Equal(t, "resource_conflict", svcErr.Category)
	assert.Nil(t, customer)
}

func TestGet_ErrCustomerNotFound(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.customerStore.EXPECT().Get(ctx, "missing").Return(nil, stores.ErrCustomerNotFound)

	customer, svcErr := f.service.Get(ctx, "missing")

	require.NotNil(t, svcErr)
	assert.Equal(t, "CUS_1002", svcErr.Code)
	assert.Nil(t, customer)
}

func TestUpdate_ChecksPhoneUniquenessOnlyWhenChanged(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	existing := &models.Customer{ID: "c1", Name: "Old", Phone: "0123456789", Address: "Old Rd"}
	f.customerStore.EXPECT().Get(ctx, "c1").Return(existing, nil)
	// No FindByPhone expectation: phone unchanged.
	f.customerStore.EXPECT().Put(ctx, gomock.Any()).Return(nil)

	customer, svcErr := f.service.Update(ctx, "c1", &customers.UpdateCustomerRequest{
		Name:    "New Name",
		Phone:   "0123456789",
		Address: "New Rd",
	})

	require.Nil(t, svcErr)
	assert.Equal(t, "New Name", customer.Name)
}

func TestUpdate_ErrPhoneAlreadyRegistered(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	existing := &models.Customer{ID: "c1", Name: "Old", Phone: "0123456789", Address: "Old Rd"}
	f.customerStore.EXPECT().Get(ctx, "c1").Return(existing, nil)
	f.customerStore.EXPECT().FindByPhone(ctx, "0987654321").
		Return(&models.Customer{ID: "c2", Phone: "0987654321"}, nil)

	customer, svcErr := f.service.Update(ctx, "c1", &customers.UpdateCustomerRequest{
		Name:    "Old",
		Phone:   "0987654321",
		Address: "Old Rd",
	})

	require.NotNil(t, svcErr)
	assert.Equal(t, "CUS_1001", svcErr.Code)
	assert.Nil(t, customer)
}

func TestDelete_CascadesOrdersFirst(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.orderStore.EXPECT().DeleteByCustomer(ctx, "c1").Return(nil),
		f.customerStore.EXPECT().Delete(ctx, "c1").Return(nil),
	)

	require.Nil(t, f.service.Delete(ctx, "c1"))
}

func TestDelete_ErrCustomerNotFound(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.orderStore.EXPECT().DeleteByCustomer(ctx, "missing").Return(nil)
	f.customerStore.EXPECT().Delete(ctx, "missing").Return(stores.ErrCustomerNotFound)

	svcErr := f.service.Delete(ctx, "missing")

	require.NotNil(t, svcErr)
	assert.Equal(t, "CUS_1002", svcErr.Code)
}

func TestList_AnnotatesPendingCounts(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.customerStore.EXPECT().All(ctx).Return([]*models.Customer{
		{ID: "c1", Name: "Alpha", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c2", Name: "Beta", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	f.orderStore.EXPECT().All(ctx).Return([]*models.Order{
		{ID: "o1", CustomerID: "c1", Status: models.StatusPending},
		{ID: "o2", CustomerID: "c1", Status: models.StatusPending},
		{ID: "o3", CustomerID: "c1", Status: models.StatusDispatched},
	}, nil)

	page, svcErr := f.service.List(ctx, &customers.ListQuery{})

	require.Nil(t, svcErr)
	require.Len(t, page.Customers, 2)
	// Newest first by default.
	assert.Equal(t, "c2", page.Customers[0].ID)
	assert.Equal(t, 0, page.Customers[0].PendingPPOCount)
	assert.Equal(t, "c1", page.Customers[1].ID)
	assert.Equal(t, 2, page.Customers[1].PendingPPOCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestList_SearchAndSortByName(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.customerStore.EXPECT().All(ctx).Return([]*models.Customer{
		{ID: "c1", Name: "Zeta Mills", Phone: "0123456789"},
		{ID: "c2", Name: "Alpha Mills", Phone: "0987654321"},
		{ID: "c3", Name: "Other", Phone: "0555555555"},
	}, nil)
	f.orderStore.EXPECT().All(ctx).Return(nil, nil)

	page, svcErr := f.service.List(ctx, &customers.ListQuery{
		SearchTerm: "mills",
		SortBy:     customers.SortName,
	})

	require.Nil(t, svcErr)
	require.Len(t, page.Customers, 2)
	assert.Equal(t, "Alpha Mills", page.Customers[0].Name)
	assert.Equal(t, "Zeta Mills", page.Customers[1].Name)
}

func TestList_PendingFilterDoesNotChangeTotalPages(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	// 25 customers means two pages before the pending filter runs.
	all := make([]*models.Customer, 0, 25)
	for i := 0; i < 25; i++ {
		all = append(all, &models.Customer{
			ID:   fmt.Sprintf("c%02d", i),
			Name: fmt.Sprintf("Customer %02d", i),
		})
	}
	f.customerStore.EXPECT().All(ctx).Return(all, nil)
	f.orderStore.EXPECT().All(ctx).Return([]*models.Order{
		{ID: "o1", CustomerID: "c00", Status: models.StatusPending},
	}, nil)

	page, svcErr := f.service.List(ctx, &customers.ListQuery{
		PendingFilter: customers.FilterPending,
	})

	require.Nil(t, svcErr)
	require.Len(t, page.Customers, 1)
	assert.Equal(t, "c00", page.Customers[0].ID)
	assert.Equal(t, 2, page.TotalPages)
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	all := make([]*models.Customer, 0, 25)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		all = append(all, &models.Customer{
			ID:        fmt.Sprintf("c%02d", i),
			Name:      fmt.Sprintf("Customer %02d", i),
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	f.customerStore.EXPECT().All(ctx).Return(all, nil)
	f.orderStore.EXPECT().All(ctx).Return(nil, nil)

	page, svcErr := f.service.List(ctx, &customers.ListQuery{Page: 2})

	require.Nil(t, svcErr)
	require.Len(t, page.Customers, 5)
	assert.Equal(t, 2, page.CurrentPage)
	// Newest first, so page two holds the five oldest.
	assert.Equal(t, "c04", page.Customers[0].ID)
	assert.Equal(t, "c00", page.Customers[4].ID)
}

func TestList_ErrRecordStoreFailed(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()

	f.customerStore.EXPECT().All(ctx).Return(nil, errors.New("disk gone"))

	page, svcErr := f.service.List(ctx, &customers.ListQuery{})

	require.NotNil(t, svcErr)
	assert.Equal(t, "CUS_9000", svcErr.Code)
	assert.Nil(t, page)
}
