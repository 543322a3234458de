package stores_test

import (
	"context"
	"testing"
	"time"

	"ppo-ops/internal/models"
	"ppo-ops/internal/shared/filestorages"
	"ppo-ops/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) filestorages.FileStorage {
	t.Helper()
	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func testCustomer(id, phone string) *models.Customer {
	return &models.Customer{
		ID:        id,
		Name:      "Customer " + id,
		Phone:     phone,
		Address:   "12 Mill Road",
		CreatedAt: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestCustomerStore_PutGet(t *testing.T) {
	t.Parallel()

	store := stores.NewCustomerStore(newTestStorage(t))
	ctx := context.Background()

	customer := testCustomer("c1", "0123456789")
	require.NoError(t, store.Put(ctx, customer))

	got, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, customer.Name, got.Name)
	assert.Equal(t, customer.Phone, got.Phone)
	assert.True(t, customer.CreatedAt.Equal(got.CreatedAt))
}

func TestCustomerStore_PutOverwritesExisting(t *testing.T) {
	t.Parallel()

	store := stores.NewCustomerStore(newTestStorage(t))
	ctx := context.Background()

	customer := testCustomer("c1", "0123456789")
	require.NoError(t, store.Put(ctx, customer))

	customer.Name = "Renamed"
	require.NoError(t, store.Put(ctx, customer))

	got, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestCustomerStore_GetNotFound(t *testing.T) {
	t.Parallel()

	store := stores.NewCustomerStore(newTestStorage(t))

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, stores.ErrCustomerNotFound)
}

func TestCustomerStore_Delete(t *testing.T) {
	t.Parallel()

	store := stores.NewCustomerStore(newTestStorage(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testCustomer("c1", "0123456789")))
	require.NoError(t, store.Delete(ctx, "c1"))

	_, err := store.Get(ctx, "c1")
	assert.ErrorIs(t, err, stores.ErrCustomerNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "c1"), stores.ErrCustomerNotFound)
}

func TestCustomerStore_All(t *testing.T) {
	t.Parallel()

	store := stores.NewCustomerStore(newTestStorage(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testCustomer("c1", "0123456789")))
	require.NoError(t, store.Put(ctx, testCustomer("c2", "0987654321")))

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCustomerStore_FindByPhone(t *testing.T) {
	t.Parallel()

	store := stores.NewCustomerStore(newTestStorage(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testCustomer("c1", "0123456789")))
	require.NoError(t, store.Put(ctx, testCustomer("c2", "0987654321")))

	got, err := store.FindByPhone(ctx, "0987654321")
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ID)

	_, err = store.FindByPhone(ctx, "0000000000")
	assert.ErrorIs(t, err, stores.ErrCustomerNotFound)
}
