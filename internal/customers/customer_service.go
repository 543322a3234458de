package customers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ppo-ops/internal/models"
	"ppo-ops/internal/shared/loggers"
	"ppo-ops/internal/shared/metrics"
	"ppo-ops/internal/shared/svcerrors"
	"ppo-ops/internal/shared/ulid"
	"ppo-ops/internal/shared/validators"
	"ppo-ops/internal/stores"
)

const pageSize = 20

const (
	SortNewest = ""
	SortOldest = "oldest"
	SortName   = "name"

	FilterPending   = "pending"
	FilterNoPending = "noPending"
)

// RegisterCustomerRequest carries the fields accepted on registration.
// Phone length bounds follow the 10-15 digit rule of the intake form.
type RegisterCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Address string `json:"address" validate:"required"`
}

// UpdateCustomerRequest carries the editable fields of a customer.
// CreatedAt is immutable and never accepted from clients.
type UpdateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Address string `json:"address" validate:"required"`
}

// ListQuery selects, orders, and pages the customer list.
type ListQuery struct {
	SearchTerm    string // case-insensitive substring on name or phone
	SortBy        string // SortNewest (default), SortOldest, SortName
	PendingFilter string // "", FilterPending, FilterNoPending
	Page          int    // 1-based; values < 1 are treated as 1
}

// CustomerWithPendingCount is a list row: the customer plus how many of
// its orders are still in raw status Pending.
type CustomerWithPendingCount struct {
	models.Customer
	PendingPPOCount int `json:"pendingPpoCount"`
}

type CustomerPage struct {
	Customers   []*CustomerWithPendingCount `json:"customers"`
	TotalPages  int                         `json:"totalPages"`
	CurrentPage int                         `json:"currentPage"`
}

//go:generate mockgen -source=customer_service.go -destination=./mocks/customer_service_mock.go -package=mocks
type CustomerService interface {
	Register(ctx context.Context, req *RegisterCustomerRequest) (*models.Customer, *svcerrors.ServiceError)
	Get(ctx context.Context, id string) (*models.Customer, *svcerrors.ServiceError)
	Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*models.Customer, *svcerrors.ServiceError)
	// Delete removes the customer and cascades deletion of all its orders.
	Delete(ctx context.Context, id string) *svcerrors.ServiceError
	List(ctx context.Context, query *ListQuery) (*CustomerPage, *svcerrors.ServiceError)
}

type customerService struct {
	customerStore stores.CustomerStore
	orderStore    stores.OrderStore
	validate      *validators.Validate
}

func NewCustomerService(customerStore stores.CustomerStore, orderStore stores.OrderStore, validate *validators.Validate) CustomerService {
	return &customerService{
		customerStore: customerStore,
		orderStore:    orderStore,
		validate:      validate,
	}
}

func (s *customerService) Register(ctx context.Context, req *RegisterCustomerRequest) (*models.Customer, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)

	if err := s.validate.Struct(req); err != nil {
		svcErr := errValidationFailed(validators.FormatErrors(err), err)
		metricCustomerRegisteredTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	_, err := s.customerStore.FindByPhone(ctx, req.Phone)
	if err == nil {
		svcErr := errPhoneAlreadyRegistered(nil)
		metricCustomerRegisteredTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	if !errors.Is(err, stores.ErrCustomerNotFound) {
		return nil, errInternalRecordStoreFailed(err)
	}

	customer := &models.Customer{
		ID:        ulid.NewULID(),
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.customerStore.Put(ctx, customer); err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}

	logger.Debug().Str(loggers.FieldCustomerID, customer.ID).Msg("customer registered")
	metricCustomerRegisteredTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, id string) (*models.Customer, *svcerrors.ServiceError) {
	customer, err := s.customerStore.Get(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrCustomerNotFound) {
			return nil, errCustomerNotFound(err)
		}
		return nil, errInternalRecordStoreFailed(err)
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*models.Customer, *svcerrors.ServiceError) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)

	if err := s.validate.Struct(req); err != nil {
		return nil, errValidationFailed(validators.FormatErrors(err), err)
	}

	customer, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	// Phone stays unique across customers
	if req.Phone != customer.Phone {
		existing, err := s.customerStore.FindByPhone(ctx, req.Phone)
		if err == nil && existing.ID != id {
			return nil, errPhoneAlreadyRegistered(nil)
		}
		if err != nil && !errors.Is(err, stores.ErrCustomerNotFound) {
			return nil, errInternalRecordStoreFailed(err)
		}
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Address = req.Address
	if err := s.customerStore.Put(ctx, customer); err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id string) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	// Orders cannot outlive their customer: cascade first, then drop the
	// customer record itself.
	if err := s.orderStore.DeleteByCustomer(ctx, id); err != nil {
		return errInternalRecordStoreFailed(err)
	}
	if err := s.customerStore.Delete(ctx, id); err != nil {
		if errors.Is(err, stores.ErrCustomerNotFound) {
			return errCustomerNotFound(err)
		}
		return errInternalRecordStoreFailed(err)
	}

	logger.Debug().Str(loggers.FieldCustomerID, id).Msg("customer and associated orders deleted")
	metricCustomerDeletedTotal.WithLabelValues().Inc()
	return nil
}

func (s *customerService) List(ctx context.Context, query *ListQuery) (*CustomerPage, *svcerrors.ServiceError) {
	customers, err := s.customerStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}

	matched := filterBySearchTerm(customers, query.SearchTerm)
	sortCustomers(matched, query.SortBy)

	// Total pages count the search match before the pending filter
	// is applied.
	totalPages := (len(matched) + pageSize - 1) / pageSize

	pendingCounts, svcErr := s.pendingCounts(ctx)
	if svcErr != nil {
		return nil, svcErr
	}

	rows := make([]*CustomerWithPendingCount, 0, len(matched))
	for _, customer := range matched {
		count := pendingCounts[customer.ID]
		switch query.PendingFilter {
		case FilterPending:
			if count == 0 {
				continue
			}
		case FilterNoPending:
			if count > 0 {
				continue
			}
		}
		rows = append(rows, &CustomerWithPendingCount{Customer: *customer, PendingPPOCount: count})
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	return &CustomerPage{
		Customers:   rows[start:end],
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *customerService) pendingCounts(ctx context.Context) (map[string]int, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	counts := make(map[string]int)
	for _, order := range orders {
		if order.Status == models.StatusPending {
			counts[order.CustomerID]++
		}
	}
	return counts, nil
}

func filterBySearchTerm(customers []*models.Customer, searchTerm string) []*models.Customer {
	if searchTerm == "" {
		return customers
	}
	needle := strings.ToLower(searchTerm)
	matched := make([]*models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Phone), needle) {
			matched = append(matched, c)
		}
	}
	return matched
}

func sortCustomers(customers []*models.Customer, sortBy string) {
	switch sortBy {
	case SortOldest:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].CreatedAt.Before(customers[j].CreatedAt)
		})
	case SortName:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].Name < customers[j].Name
		})
	default: // newest first
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].CreatedAt.After(customers[j].CreatedAt)
		})
	}
}
