package http

import (
	"net/http"

	"ppo-ops/internal/reports"
)

type analyticsHandlers struct {
	reportService reports.ReportService
}

func newAnalyticsHandlers(reportService reports.ReportService) *analyticsHandlers {
	return &analyticsHandlers{reportService: reportService}
}

// summary processes GET /analytics/ppo-summary requests.
func (h *analyticsHandlers) summary(w http.ResponseWriter, r *http.Request) error {
	result, svcErr := h.reportService.PPOSummary(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, result)
}

// monthlySummary processes GET /analytics/ppo-monthly-summary requests.
func (h *analyticsHandlers) monthlySummary(w http.ResponseWriter, r *http.Request) error {
	year, err := queryInt(r, "year")
	if err != nil {
		return err
	}
	month, err := queryInt(r, "month")
	if err != nil {
		return err
	}

	result, svcErr := h.reportService.MonthlyPPOSummary(r.Context(), year, month)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, result)
}

// customerGrowth processes GET /analytics/customer-growth requests.
func (h *analyticsHandlers) customerGrowth(w http.ResponseWriter, r *http.Request) error {
	rows, svcErr := h.reportService.CustomerGrowth(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}

// customersServed processes GET /analytics/customers-served requests.
func (h *analyticsHandlers) customersServed(w http.ResponseWriter, r *http.Request) error {
	rows, svcErr := h.reportService.CustomersServed(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}

// revenueTrend processes GET /analytics/revenue-trend requests.
func (h *analyticsHandlers) revenueTrend(w http.ResponseWriter, r *http.Request) error {
	rows, svcErr := h.reportService.RevenueTrend(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}

// topCustomers processes GET /analytics/top-customers requests.
func (h *analyticsHandlers) topCustomers(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return err
	}

	rows, svcErr := h.reportService.TopCustomers(r.Context(), limit)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}

// statusDistribution processes GET /analytics/ppo-status-distribution requests.
func (h *analyticsHandlers) statusDistribution(w http.ResponseWriter, r *http.Request) error {
	rows, svcErr := h.reportService.StatusDistribution(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}

// completionRate processes GET /analytics/completion-rate requests.
func (h *analyticsHandlers) completionRate(w http.ResponseWriter, r *http.Request) error {
	rows, svcErr := h.reportService.CompletionRate(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}
