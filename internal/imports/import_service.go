package imports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
	"ppo-ops/internal/orders"
	"ppo-ops/internal/shared/loggers"
	"ppo-ops/internal/shared/svcerrors"
	"ppo-ops/internal/shared/ulid"
	"ppo-ops/internal/stores"
)

const maxImportBytes = 2 * 1024 * 1024

// ImportItem is one row of a bulk-import payload: customer identity plus,
// optionally, an order to raise for it. Customers are matched by phone; a
// match reuses the existing record instead of registering a duplicate.
// Address may be omitted (it defaults to empty). The order is created only
// when both a value and a type are present; a row carrying just the
// customer fields imports the customer alone.
type ImportItem struct {
	Name            string             `json:"name"`
	Phone           string             `json:"phone"`
	Address         string             `json:"address"`
	Value           decimal.Decimal    `json:"ppoValue"`
	Type            string             `json:"ppoType"`
	Description     string             `json:"ppoDescription"`
	Status          models.OrderStatus `json:"status"`
	SalesmanName    string             `json:"salesmanName"`
	Priority        models.Priority    `json:"priority"`
	PaymentTermDays int                `json:"paymentTermDays"`
}

// ImportFailure records why one item was skipped. The rest of the batch
// is unaffected.
type ImportFailure struct {
	Index  int    `json:"index"`
	Phone  string `json:"phone,omitempty"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	ImportedCount int              `json:"importedCount"`
	FailedCount   int              `json:"failedCount"`
	Failures      []*ImportFailure `json:"failures"`
}

//go:generate mockgen -source=import_service.go -destination=./mocks/import_service_mock.go -package=mocks
type ImportService interface {
	// ImportBatch processes a JSON array of customer rows with optional
	// order data. Item failures are collected per row; only an unusable
	// payload fails the whole call.
	ImportBatch(ctx context.Context, r io.Reader) (*ImportResult, *svcerrors.ServiceError)
}

type importService struct {
	customerStore stores.CustomerStore
	orderService  orders.OrderService
}

func NewImportService(customerStore stores.CustomerStore, orderService orders.OrderService) ImportService {
	return &importService{
		customerStore: customerStore,
		orderService:  orderService,
	}
}

func (s *importService) ImportBatch(ctx context.Context, r io.Reader) (*ImportResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	items, svcErr := s.parseBatch(r)
	if svcErr != nil {
		return nil, svcErr
	}

	result := &ImportResult{Failures: []*ImportFailure{}}
	for i, item := range items {
		if err := s.importItem(ctx, item); err != nil {
			result.FailedCount++
			result.Failures = append(result.Failures, &ImportFailure{
				Index:  i,
				Phone:  strings.TrimSpace(item.Phone),
				Reason: err.Error(),
			})
			metricImportItemsTotal.WithLabelValues(resultFailed).Inc()
			continue
		}
		result.ImportedCount++
		metricImportItemsTotal.WithLabelValues(resultImported).Inc()
	}

	logger.Debug().
		Int("imported", result.ImportedCount).
		Int("failed", result.FailedCount).
		Msg("bulk import finished")
	return result, nil
}

func (s *importService) parseBatch(r io.Reader) ([]*ImportItem, *svcerrors.ServiceError) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxImportBytes+1))
	if err != nil {
		return nil, errValidationFailed("unreadable request body", err)
	}
	if len(buf) > maxImportBytes {
		return nil, errValidationFailed("import too large: must be <= 2MB", nil)
	}

	var items []*ImportItem
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of import items", err)
	}
	if len(items) == 0 {
		return nil, errValidationFailed("import items cannot be empty", nil)
	}
	return items, nil
}

// importItem resolves the item's customer (by phone, registering when
// missing) and raises its order when the row carries order data.
func (s *importService) importItem(ctx context.Context, item *ImportItem) error {
	customerID, err := s.resolveCustomer(ctx, item)
	if err != nil {
		return err
	}

	if !hasOrderData(item) {
		return nil
	}

	_, svcErr := s.orderService.Create(ctx, &orders.CreateOrderRequest{
		CustomerID:      customerID,
		Value:           item.Value,
		Type:            item.Type,
		Description:     item.Description,
		Status:          item.Status,
		SalesmanName:    item.SalesmanName,
		Priority:        item.Priority,
		PaymentTermDays: item.PaymentTermDays,
	})
	if svcErr != nil {
		return fmt.Errorf("order: %s", svcErr.Message)
	}
	return nil
}

// hasOrderData reports whether the row asks for an order: both a value
// and a type must be present, otherwise the row is customer-only.
func hasOrderData(item *ImportItem) bool {
	return !item.Value.IsZero() && strings.TrimSpace(item.Type) != ""
}

// resolveCustomer registers import rows directly instead of going through
// the registration request path: imported rows may omit the address, which
// then defaults to empty.
func (s *importService) resolveCustomer(ctx context.Context, item *ImportItem) (string, error) {
	phone := strings.TrimSpace(item.Phone)
	if phone == "" {
		return "", errors.New("customer: phone is required")
	}

	existing, err := s.customerStore.FindByPhone(ctx, phone)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, stores.ErrCustomerNotFound) {
		return "", errInternalRecordStoreFailed(err)
	}

	name := strings.TrimSpace(item.Name)
	if name == "" {
		return "", errors.New("customer: name is required")
	}

	customer := &models.Customer{
		ID:        ulid.NewULID(),
		Name:      name,
		Phone:     phone,
		Address:   strings.TrimSpace(item.Address),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.customerStore.Put(ctx, customer); err != nil {
		return "", errInternalRecordStoreFailed(err)
	}
	return customer.ID, nil
}
