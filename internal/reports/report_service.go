package reports

import (
	"context"

	"ppo-ops/internal/models"
	"ppo-ops/internal/shared/loggers"
	"ppo-ops/internal/shared/svcerrors"
	"ppo-ops/internal/stores"
)

const (
	reportSummary         = "ppo_summary"
	reportMonthlySummary  = "ppo_monthly_summary"
	reportCustomerGrowth  = "customer_growth"
	reportCustomersServed = "customers_served"
	reportRevenueTrend    = "revenue_trend"
	reportTopCustomers    = "top_customers"
	reportDistribution    = "ppo_status_distribution"
	reportCompletionRate  = "completion_rate"
)

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// PPOSummary returns the all-time pending/dispatched value split.
	PPOSummary(ctx context.Context) (*models.FinancialSummary, *svcerrors.ServiceError)
	// MonthlyPPOSummary returns the pending/dispatched split for one calendar month.
	MonthlyPPOSummary(ctx context.Context, year, month int) (*models.FinancialSummary, *svcerrors.ServiceError)
	CustomerGrowth(ctx context.Context) ([]models.MonthlyGrowthRow, *svcerrors.ServiceError)
	CustomersServed(ctx context.Context) ([]models.CustomersServedRow, *svcerrors.ServiceError)
	RevenueTrend(ctx context.Context) ([]models.RevenueTrendRow, *svcerrors.ServiceError)
	// TopCustomers ranks customers by completed-order revenue. limit == 0
	// means unspecified and falls back to the configured default; a negative
	// limit yields an empty ranking.
	TopCustomers(ctx context.Context, limit int) ([]models.TopCustomerRow, *svcerrors.ServiceError)
	StatusDistribution(ctx context.Context) ([]models.StatusDistributionRow, *svcerrors.ServiceError)
	CompletionRate(ctx context.Context) ([]models.CompletionRateRow, *svcerrors.ServiceError)
}

type reportService struct {
	orderStore      stores.OrderStore
	customerStore   stores.CustomerStore
	defaultTopLimit int
}

func NewReportService(orderStore stores.OrderStore, customerStore stores.CustomerStore, defaultTopLimit int) ReportService {
	return &reportService{
		orderStore:      orderStore,
		customerStore:   customerStore,
		defaultTopLimit: defaultTopLimit,
	}
}

func (s *reportService) PPOSummary(ctx context.Context) (*models.FinancialSummary, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	summary := Summary(orders)
	metricReportGeneratedTotal.WithLabelValues(reportSummary).Inc()
	return &summary, nil
}

func (s *reportService) MonthlyPPOSummary(ctx context.Context, year, month int) (*models.FinancialSummary, *svcerrors.ServiceError) {
	if year < 1 {
		return nil, errInvalidReportPeriod("year must be a positive integer")
	}
	if month < 1 || month > 12 {
		return nil, errInvalidReportPeriod("month must be between 1 and 12")
	}
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	summary := MonthlySummary(orders, year, month)
	metricReportGeneratedTotal.WithLabelValues(reportMonthlySummary).Inc()
	return &summary, nil
}

func (s *reportService) CustomerGrowth(ctx context.Context) ([]models.MonthlyGrowthRow, *svcerrors.ServiceError) {
	customers, err := s.customerStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	rows := CustomerGrowth(customers)
	metricReportGeneratedTotal.WithLabelValues(reportCustomerGrowth).Inc()
	return rows, nil
}

func (s *reportService) CustomersServed(ctx context.Context) ([]models.CustomersServedRow, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	rows := CustomersServed(orders)
	metricReportGeneratedTotal.WithLabelValues(reportCustomersServed).Inc()
	return rows, nil
}

func (s *reportService) RevenueTrend(ctx context.Context) ([]models.RevenueTrendRow, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	rows := RevenueTrend(orders)
	metricReportGeneratedTotal.WithLabelValues(reportRevenueTrend).Inc()
	return rows, nil
}

func (s *reportService) TopCustomers(ctx context.Context, limit int) ([]models.TopCustomerRow, *svcerrors.ServiceError) {
	if limit == 0 {
		limit = s.defaultTopLimit
	}
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldReport, reportTopCustomers).
		Int("limit", limit).
		Msg("ranking top customers by revenue")

	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	customers, err := s.customerStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	rows := TopCustomers(orders, customers, limit)
	metricReportGeneratedTotal.WithLabelValues(reportTopCustomers).Inc()
	return rows, nil
}

func (s *reportService) StatusDistribution(ctx context.Context) ([]models.StatusDistributionRow, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	rows := StatusDistribution(orders)
	metricReportGeneratedTotal.WithLabelValues(reportDistribution).Inc()
	return rows, nil
}

func (s *reportService) CompletionRate(ctx context.Context) ([]models.CompletionRateRow, *svcerrors.ServiceError) {
	orders, err := s.orderStore.All(ctx)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	rows := CompletionRate(orders)
	metricReportGeneratedTotal.WithLabelValues(reportCompletionRate).Inc()
	return rows, nil
}
