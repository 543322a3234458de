package orders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ppo-ops/internal/models"
	"ppo-ops/internal/payments"
	"ppo-ops/internal/shared/loggers"
	"ppo-ops/internal/shared/metrics"
	"ppo-ops/internal/shared/svcerrors"
	"ppo-ops/internal/shared/ulid"
	"ppo-ops/internal/shared/validators"
	"ppo-ops/internal/stores"
)

const (
	SortNewest = ""
	SortOldest = "oldest"
	SortValue  = "value"
)

// CreateOrderRequest carries the fields accepted when raising an order.
// Omitted optional fields take the documented defaults: status Pending,
// priority Low, salesman "N/A", payment term 30 days.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customerId" validate:"required"`
	Value           decimal.Decimal    `json:"ppoValue"`
	Type            string             `json:"ppoType" validate:"required"`
	Description     string             `json:"ppoDescription"`
	Status          models.OrderStatus `json:"status"`
	PendingRemark   string             `json:"pendingRemark"`
	SalesmanName    string             `json:"salesmanName"`
	Priority        models.Priority    `json:"priority"`
	PaymentTermDays int                `json:"paymentTermDays"`
}

// UpdateOrderRequest carries the full editable field set of an order.
// CustomerID and CreatedAt are immutable; the due date is recomputed from
// CreatedAt whenever the payment term changes.
type UpdateOrderRequest struct {
	Value           decimal.Decimal    `json:"ppoValue"`
	Type            string             `json:"ppoType" validate:"required"`
	Description     string             `json:"ppoDescription"`
	Status          models.OrderStatus `json:"status" validate:"required"`
	PendingRemark   string             `json:"pendingRemark"`
	SalesmanName    string             `json:"salesmanName" validate:"required"`
	Priority        models.Priority    `json:"priority" validate:"required"`
	PaymentTermDays int                `json:"paymentTermDays" validate:"required"`
}

// ListQuery selects and orders the joined order list.
type ListQuery struct {
	Status    models.OrderStatus // "" means all statuses (raw match, no normalization)
	StartDate time.Time          // inclusive lower bound on CreatedAt's calendar date
	EndDate   time.Time          // inclusive upper bound on CreatedAt's calendar date
	SortBy    string             // SortNewest (default), SortOldest, SortValue
	Search    string             // case-insensitive substring on customer name, type, or description
	AsOf      time.Time          // reference date for payment classification; zero means now
}

// OrderRow is a list row: the order joined with its customer and annotated
// with the payment-due verdict for the query's reference date.
type OrderRow struct {
	models.Order
	CustomerName string                  `json:"customerName"`
	Payment      payments.Classification `json:"payment"`
	StalePending bool                    `json:"stalePending"`
}

//go:generate mockgen -source=order_service.go -destination=./mocks/order_service_mock.go -package=mocks
type OrderService interface {
	Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, *svcerrors.ServiceError)
	Get(ctx context.Context, id string) (*models.Order, *svcerrors.ServiceError)
	// UpdateStatus moves the order to any known status. Transitions are
	// unconstrained: Dispatched back to Pending is allowed.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, *svcerrors.ServiceError)
	UpdateRemark(ctx context.Context, id string, remark string) (*models.Order, *svcerrors.ServiceError)
	Update(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, *svcerrors.ServiceError)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Order, *svcerrors.ServiceError)
	List(ctx context.Context, query *ListQuery) ([]*OrderRow, *svcerrors.ServiceError)
}

type orderService struct {
	orderStore    stores.OrderStore
	customerStore stores.CustomerStore
	validate      *validators.Validate
	classifier    *payments.Classifier
}

func NewOrderService(orderStore stores.OrderStore, customerStore stores.CustomerStore, validate *validators.Validate, classifier *payments.Classifier) OrderService {
	return &orderService{
		orderStore:    orderStore,
		customerStore: customerStore,
		validate:      validate,
		classifier:    classifier,
	}
}

func (s *orderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	applyCreateDefaults(req)
	if err := s.validate.Struct(req); err != nil {
		svcErr := errValidationFailed(validators.FormatErrors(err), err)
		metricOrderCreatedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	if svcErr := validateOrderFields(req.Value, req.Status, req.Priority, req.PaymentTermDays); svcErr != nil {
		metricOrderCreatedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	if _, err := s.customerStore.Get(ctx, req.CustomerID); err != nil {
		if errors.Is(err, stores.ErrCustomerNotFound) {
			svcErr := errCustomerNotFound(err)
			metricOrderCreatedTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		return nil, errInternalRecordStoreFailed(err)
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:              ulid.NewULID(),
		CustomerID:      req.CustomerID,
		Value:           req.Value,
		Type:            req.Type,
		Description:     req.Description,
		Status:          req.Status,
		PendingRemark:   req.PendingRemark,
		SalesmanName:    req.SalesmanName,
		Priority:        req.Priority,
		PaymentTermDays: req.PaymentTermDays,
		PaymentDueDate:  payments.ComputeDueDate(now, req.PaymentTermDays),
		CreatedAt:       now,
	}
	if err := s.orderStore.Put(ctx, order); err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}

	logger.Debug().
		Str(loggers.FieldOrderID, order.ID).
		Str(loggers.FieldCustomerID, order.CustomerID).
		Msg("order created")
	metricOrderCreatedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*models.Order, *svcerrors.ServiceError) {
	order, err := s.orderStore.Get(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrOrderNotFound) {
			return nil, errOrderNotFound(err)
		}
		return nil, errInternalRecordStoreFailed(err)
	}
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, *svcerrors.ServiceError) {
	if !models.IsKnownStatus(status) {
		return nil, errValidationFailed("unknown order status", nil)
	}

	order, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	order.Status = status
	if err := s.orderStore.Put(ctx, order); err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}

	metricOrderStatusUpdatedTotal.WithLabelValues(string(status)).Inc()
	return order, nil
}

func (s *orderService) UpdateRemark(ctx context.Context, id string, remark string) (*models.Order, *svcerrors.ServiceError) {
	order, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	order.PendingRemark = strings.TrimSpace(remark)
	if err := s.orderStore.Put(ctx, order); err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, *svcerrors.ServiceError) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errValidationFailed(validators.FormatErrors(err), err)
	}
	if svcErr := validateOrderFields(req.Value, req.Status, req.Priority, req.PaymentTermDays); svcErr != nil {
		return nil, svcErr
	}

	order, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.PaymentTermDays != order.PaymentTermDays {
		order.PaymentDueDate = payments.ComputeDueDate(order.CreatedAt, req.PaymentTermDays)
	}
	order.Value = req.Value
	order.Type = strings.TrimSpace(req.Type)
	order.Description = strings.TrimSpace(req.Description)
	order.Status = req.Status
	order.PendingRemark = strings.TrimSpace(req.PendingRemark)
	order.SalesmanName = req.SalesmanName
	order.Priority = req.Priority
	order.PaymentTermDays = req.PaymentTermDays

	if err := s.orderStore.Put(ctx, order); err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	return order, nil
}

func (s *orderService) ListByCustomer(ctx context.Context, customerID string) ([]*models.Order, *svcerrors.ServiceError) {
	if _, err := s.customerStore.Get(ctx, customerID); err != nil {
		if errors.Is(err, stores.ErrCustomerNotFound) {
			return nil, errCustomerNotFound(err)
		}
		return nil, errInternalRecordStoreFailed(err)
	}

	orders, err := s.orderStore.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *orderService) List(ctx context.Context, query *ListQuery) ([]*OrderRow, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	customers, err := s.customerStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	namesByID := make(map[string]string, len(customers))
	for _, c := range customers {
		namesByID[c.ID] = c.Name
	}

	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	rows := make([]*OrderRow, 0, len(orders))
	for _, order := range orders {
		if query.Status != "" && order.Status != query.Status {
			continue
		}
		if !inDateRange(order.CreatedAt, query.StartDate, query.EndDate) {
			continue
		}
		row := &OrderRow{
			Order:        *order,
			CustomerName: namesByID[order.CustomerID],
			Payment:      s.classifier.ClassifyOrder(order, asOf),
			StalePending: s.classifier.IsStalePending(order, asOf),
		}
		if !matchesSearch(row, query.Search) {
			continue
		}
		rows = append(rows, row)
	}

	sortRows(rows, query.SortBy)
	return rows, nil
}

func applyCreateDefaults(req *CreateOrderRequest) {
	req.Type = strings.TrimSpace(req.Type)
	req.Description = strings.TrimSpace(req.Description)
	req.PendingRemark = strings.TrimSpace(req.PendingRemark)
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if req.Priority == "" {
		req.Priority = models.PriorityLow
	}
	if strings.TrimSpace(req.SalesmanName) == "" {
		req.SalesmanName = models.SalesmanNotApplicable
	}
	if req.PaymentTermDays == 0 {
		req.PaymentTermDays = models.DefaultPaymentTermDays
	}
}

func validateOrderFields(value decimal.Decimal, status models.OrderStatus, priority models.Priority, termDays int) *svcerrors.ServiceError {
	if value.IsNegative() {
		return errValidationFailed("ppoValue must not be negative", nil)
	}
	if !models.IsKnownStatus(status) {
		return errValidationFailed("unknown order status", nil)
	}
	if !models.IsKnownPriority(priority) {
		return errValidationFailed("unknown order priority", nil)
	}
	if !models.IsValidPaymentTerm(termDays) {
		return errValidationFailed("paymentTermDays must be 30 or 60", nil)
	}
	return nil
}

// inDateRange bounds-checks createdAt against inclusive calendar-date
// limits. A zero bound is open on that side.
func inDateRange(createdAt, start, end time.Time) bool {
	if !start.IsZero() && payments.DaysBetween(start, createdAt) < 0 {
		return false
	}
	if !end.IsZero() && payments.DaysBetween(end, createdAt) > 0 {
		return false
	}
	return true
}

func matchesSearch(row *OrderRow, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(row.CustomerName), needle) ||
		strings.Contains(strings.ToLower(row.Type), needle) ||
		strings.Contains(strings.ToLower(row.Description), needle)
}

func sortRows(rows []*OrderRow, sortBy string) {
	switch sortBy {
	case SortOldest:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		})
	case SortValue:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Value.Cmp(rows[j].Value) > 0
		})
	default: // newest first
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		})
	}
}
