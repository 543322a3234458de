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

var ErrCustomerNotFound = errors.New("customer not found")

//go:generate mockgen -source=customer_store.go -destination=./mocks/customer_store_mock.go -package=mocks
type CustomerStore interface {
	// Put creates or replaces the customer record.
	Put(ctx context.Context, customer *models.Customer) error
	Get(ctx context.Context, id string) (*models.Customer, error)
	// Delete removes the customer record. Returns ErrCustomerNotFound if absent.
	Delete(ctx context.Context, id string) error
	// All returns a snapshot of every customer record.
	All(ctx context.Context) ([]*models.Customer, error)
	// FindByPhone returns the customer with the given phone, or
	// ErrCustomerNotFound. Phone is unique across customers.
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
}

type customerStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewCustomerStore(fileStorage filestorages.FileStorage) CustomerStore {
	return &customerStore{fileStorage: fileStorage, dir: "customers"}
}

func (s *customerStore) Put(ctx context.Context, customer *models.Customer) error {
	jsonData, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer: %w", err)
	}
	key := s.getKey(customer.ID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put customer: %w", err)
	}
	return nil
}

func (s *customerStore) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.read(ctx, s.getKey(id))
}

func (s *customerStore) Delete(ctx context.Context, id string) error {
	err := s.fileStorage.Delete(ctx, s.getKey(id))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *customerStore) All(ctx context.Context) ([]*models.Customer, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*models.Customer, 0, len(keys))
	for _, key := range keys {
		customer, err := s.read(ctx, key)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				// Deleted between List and Get
				continue
			}
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (s *customerStore) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	// Linear scan; the customer set is small and reads come from local files.
	customers, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		if customer.Phone == phone {
			return customer, nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (s *customerStore) read(ctx context.Context, key string) (*models.Customer, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read customer: %w", err)
	}
	var customer models.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer: %w", err)
	}
	return &customer, nil
}

func (s *customerStore) getKey(id string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, id)
}
