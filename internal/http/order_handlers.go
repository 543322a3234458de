package http

import (
	"net/http"

	"ppo-ops/internal/models"
	"ppo-ops/internal/orders"

	"github.com/go-chi/chi/v5"
)

type orderHandlers struct {
	orderService orders.OrderService
}

func newOrderHandlers(orderService orders.OrderService) *orderHandlers {
	return &orderHandlers{orderService: orderService}
}

// create processes POST /ppos requests.
func (h *orderHandlers) create(w http.ResponseWriter, r *http.Request) error {
	var req orders.CreateOrderRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	order, svcErr := h.orderService.Create(r.Context(), &req)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusCreated, order)
}

// list processes GET /ppos requests.
func (h *orderHandlers) list(w http.ResponseWriter, r *http.Request) error {
	startDate, err := queryDate(r, "startDate")
	if err != nil {
		return err
	}
	endDate, err := queryDate(r, "endDate")
	if err != nil {
		return err
	}
	asOf, err := queryDate(r, "asOf")
	if err != nil {
		return err
	}

	query := &orders.ListQuery{
		Status:    models.OrderStatus(r.URL.Query().Get("status")),
		StartDate: startDate,
		EndDate:   endDate,
		SortBy:    r.URL.Query().Get("sortBy"),
		Search:    r.URL.Query().Get("search"),
		AsOf:      asOf,
	}
	rows, svcErr := h.orderService.List(r.Context(), query)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, rows)
}

// get processes GET /ppos/{ppoID} requests.
func (h *orderHandlers) get(w http.ResponseWriter, r *http.Request) error {
	order, svcErr := h.orderService.Get(r.Context(), chi.URLParam(r, "ppoID"))
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, order)
}

// updateStatus processes PATCH /ppos/{ppoID} requests.
func (h *orderHandlers) updateStatus(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	order, svcErr := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "ppoID"), req.Status)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, order)
}

// updateRemark processes PATCH /ppos/{ppoID}/remark requests.
func (h *orderHandlers) updateRemark(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		PendingRemark string `json:"pendingRemark"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	order, svcErr := h.orderService.UpdateRemark(r.Context(), chi.URLParam(r, "ppoID"), req.PendingRemark)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, order)
}

// update processes PUT /ppos/{ppoID} requests, a full field edit.
func (h *orderHandlers) update(w http.ResponseWriter, r *http.Request) error {
	var req orders.UpdateOrderRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	order, svcErr := h.orderService.Update(r.Context(), chi.URLParam(r, "ppoID"), &req)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, order)
}
