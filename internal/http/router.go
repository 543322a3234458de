package http

import (
	"net/http"

	"ppo-ops/internal/customers"
	"ppo-ops/internal/imports"
	"ppo-ops/internal/orders"
	"ppo-ops/internal/reports"
	"ppo-ops/internal/shared/loggers"
	"ppo-ops/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	customerService customers.CustomerService,
	orderService orders.OrderService,
	reportService reports.ReportService,
	importService imports.ImportService,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	customerHandlers := newCustomerHandlers(customerService, orderService, importService)
	orderHandlers := newOrderHandlers(orderService)
	analyticsHandlers := newAnalyticsHandlers(reportService)

	// Routes
	router.Route("/customers", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(AppHandlerFunc(customerHandlers.register)))
		r.Get("/", errorHandlingAdapter(AppHandlerFunc(customerHandlers.list)))
		r.Post("/bulk-import", errorHandlingAdapter(AppHandlerFunc(customerHandlers.bulkImport)))
		r.Get("/{customerID}", errorHandlingAdapter(AppHandlerFunc(customerHandlers.get)))
		r.Patch("/{customerID}", errorHandlingAdapter(AppHandlerFunc(customerHandlers.update)))
		r.Delete("/{customerID}", errorHandlingAdapter(AppHandlerFunc(customerHandlers.delete)))
		r.Get("/{customerID}/ppos", errorHandlingAdapter(AppHandlerFunc(customerHandlers.listOrders)))
	})

	router.Route("/ppos", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(AppHandlerFunc(orderHandlers.create)))
		r.Get("/", errorHandlingAdapter(AppHandlerFunc(orderHandlers.list)))
		r.Get("/{ppoID}", errorHandlingAdapter(AppHandlerFunc(orderHandlers.get)))
		r.Patch("/{ppoID}", errorHandlingAdapter(AppHandlerFunc(orderHandlers.updateStatus)))
		r.Patch("/{ppoID}/remark", errorHandlingAdapter(AppHandlerFunc(orderHandlers.updateRemark)))
		r.Put("/{ppoID}", errorHandlingAdapter(AppHandlerFunc(orderHandlers.update)))
	})

	router.Route("/analytics", func(r chi.Router) {
		r.Get("/ppo-summary", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.summary)))
		r.Get("/ppo-monthly-summary", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.monthlySummary)))
		r.Get("/customer-growth", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.customerGrowth)))
		r.Get("/customers-served", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.customersServed)))
		r.Get("/revenue-trend", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.revenueTrend)))
		r.Get("/top-customers", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.topCustomers)))
		r.Get("/ppo-status-distribution", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.statusDistribution)))
		r.Get("/completion-rate", errorHandlingAdapter(AppHandlerFunc(analyticsHandlers.completionRate)))
	})

	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
