package http

import (
	"net/http"

	"ppo-ops/internal/customers"
	"ppo-ops/internal/imports"
	"ppo-ops/internal/orders"

	"github.com/go-chi/chi/v5"
)

type customerHandlers struct {
	customerService customers.CustomerService
	orderService    orders.OrderService
	importService   imports.ImportService
}

func newCustomerHandlers(customerService customers.CustomerService, orderService orders.OrderService, importService imports.ImportService) *customerHandlers {
	return &customerHandlers{
		customerService: customerService,
		orderService:    orderService,
		importService:   importService,
	}
}

// register processes POST /customers requests.
func (h *customerHandlers) register(w http.ResponseWriter, r *http.Request) error {
	var req customers.RegisterCustomerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	customer, svcErr := h.customerService.Register(r.Context(), &req)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusCreated, customer)
}

// list processes GET /customers requests.
func (h *customerHandlers) list(w http.ResponseWriter, r *http.Request) error {
	page, err := queryInt(r, "page")
	if err != nil {
		return err
	}

	query := &customers.ListQuery{
		SearchTerm:    r.URL.Query().Get("search"),
		SortBy:        r.URL.Query().Get("sortBy"),
		PendingFilter: r.URL.Query().Get("pendingFilter"),
		Page:          page,
	}
	result, svcErr := h.customerService.List(r.Context(), query)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, result)
}

// get processes GET /customers/{customerID} requests.
func (h *customerHandlers) get(w http.ResponseWriter, r *http.Request) error {
	customer, svcErr := h.customerService.Get(r.Context(), chi.URLParam(r, "customerID"))
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, customer)
}

// update processes PATCH /customers/{customerID} requests.
func (h *customerHandlers) update(w http.ResponseWriter, r *http.Request) error {
	var req customers.UpdateCustomerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	customer, svcErr := h.customerService.Update(r.Context(), chi.URLParam(r, "customerID"), &req)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, customer)
}

// delete processes DELETE /customers/{customerID} requests. Orders of the
// customer are removed with it.
func (h *customerHandlers) delete(w http.ResponseWriter, r *http.Request) error {
	if svcErr := h.customerService.Delete(r.Context(), chi.URLParam(r, "customerID")); svcErr != nil {
		return svcErr
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// listOrders processes GET /customers/{customerID}/ppos requests.
func (h *customerHandlers) listOrders(w http.ResponseWriter, r *http.Request) error {
	orderList, svcErr := h.orderService.ListByCustomer(r.Context(), chi.URLParam(r, "customerID"))
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, orderList)
}

// bulkImport processes POST /customers/bulk-import requests.
func (h *customerHandlers) bulkImport(w http.ResponseWriter, r *http.Request) error {
	result, svcErr := h.importService.ImportBatch(r.Context(), r.Body)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, result)
}
