package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"ppo-ops/internal/models"
	"ppo-ops/internal/shared/filestorages"
)

var ErrOrderNotFound = errors.New("order not found")

//go:generate mockgen -source=order_store.go -destination=./mocks/order_store_mock.go -package=mocks
type OrderStore interface {
	// Put creates or replaces the order record.
	Put(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	// ListByCustomer returns all orders raised against the given customer.
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Order, error)
	// All returns a snapshot of every order record.
	All(ctx context.Context) ([]*models.Order, error)
	// DeleteByCustomer removes every order belonging to the customer.
	// Deleting for a customer with no orders is a no-op, not an error.
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type orderStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewOrderStore(fileStorage filestorages.FileStorage) OrderStore {
	return &orderStore{fileStorage: fileStorage, dir: "orders"}
}

func (s *orderStore) Put(ctx context.Context, order *models.Order) error {
	jsonData, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	key := s.getKey(order.ID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put order: %w", err)
	}
	return nil
}

func (s *orderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.read(ctx, s.getKey(id))
}

func (s *orderStore) ListByCustomer(ctx context.Context, customerID string) ([]*models.Order, error) {
	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	matching := make([]*models.Order, 0, len(orders))
	for _, order := range orders {
		if order.CustomerID == customerID {
			matching = append(matching, order)
		}
	}
	return matching, nil
}

func (s *orderStore) All(ctx context.Context) ([]*models.Order, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*models.Order, 0, len(keys))
	for _, key := range keys {
		order, err := s.read(ctx, key)
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				// Deleted between List and Get
				continue
			}
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *orderStore) DeleteByCustomer(ctx context.Context, customerID string) error {
	orders, err := s.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	for _, order := range orders {
		err := s.fileStorage.Delete(ctx, s.getKey(order.ID))
		if err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
			return fmt.Errorf("failed to delete order %s: %w", order.ID, err)
		}
	}
	return nil
}

func (s *orderStore) read(ctx context.Context, key string) (*models.Order, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read order: %w", err)
	}
	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

func (s *orderStore) getKey(id string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, id)
}
