package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	baseURL       = "http://localhost:8080"
	customerCount = 4
	ordersPerCust = 3
)

// ### End - fixed configs

// main runs the e2e scenario: 001_march_revenue_rollup
//
// This scenario tests the end-to-end flow of customer registration, purchase
// order creation, status dispatching, and the analytics rollups built on top.
//
// What it tests:
//   - Customer registration via POST /customers with unique phone numbers
//   - Duplicate phone rejection with 409 Conflict
//   - Order creation via POST /ppos with default status/priority/term
//   - Status updates via PATCH /ppos/{id}
//   - Financial summary split between pending and dispatched value
//   - Top customer ranking by completed revenue
//   - Completion rate aggregation
//
// Expected results:
//   - 4 customers registered, duplicate registration rejected
//   - 12 orders created (3 per customer), each worth 100, 200, 300
//   - The first order of every customer is dispatched (value 100 each)
//   - ppo-summary reports dispatchedTotal 400 and pendingTotal 2000
//   - top-customers ranks all 4 customers with totalRevenue 100 each
//   - completion-rate reports 12 total, 4 completed
func main() {
	client := &http.Client{}

	customerIDs := make([]string, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		id, err := registerCustomer(client, i)
		if err != nil {
			fail("register customer %d: %v", i, err)
		}
		customerIDs = append(customerIDs, id)
	}

	// Duplicate phone must conflict
	status, err := postJSON(client, "/customers", map[string]string{
		"name":    "Duplicate",
		"phone":   phoneFor(0),
		"address": "Elsewhere",
	}, nil)
	if err != nil {
		fail("duplicate register request: %v", err)
	}
	if status != http.StatusConflict {
		fail("duplicate phone: expected 409, got %d", status)
	}

	orderIDs := make(map[string][]string)
	for _, customerID := range customerIDs {
		for j := 0; j < ordersPerCust; j++ {
			var created struct {
				ID string `json:"id"`
			}
			status, err := postJSON(client, "/ppos", map[string]any{
				"customerId": customerID,
				"ppoValue":   fmt.Sprintf("%d", (j+1)*100),
				"ppoType":    "Fabric",
			}, &created)
			if err != nil || status != http.StatusCreated {
				fail("create order (status %d): %v", status, err)
			}
			orderIDs[customerID] = append(orderIDs[customerID], created.ID)
		}
	}

	// Dispatch the first order of every customer
	for _, customerID := range customerIDs {
		first := orderIDs[customerID][0]
		status, err := patchJSON(client, "/ppos/"+first, map[string]string{"status": "Dispatched"})
		if err != nil || status != http.StatusOK {
			fail("dispatch order %s (status %d): %v", first, status, err)
		}
	}

	verifySummary(client)
	verifyTopCustomers(client)
	verifyCompletionRate(client)

	fmt.Println("PASS: 001_march_revenue_rollup")
}

func verifySummary(client *http.Client) {
	var summary struct {
		PendingTotal    json.Number `json:"pendingTotal"`
		DispatchedTotal json.Number `json:"dispatchedTotal"`
	}
	if err := getJSON(client, "/analytics/ppo-summary", &summary); err != nil {
		fail("ppo-summary: %v", err)
	}
	if summary.DispatchedTotal.String() != "400" {
		fail("ppo-summary: expected dispatchedTotal 400, got %s", summary.DispatchedTotal)
	}
	if summary.PendingTotal.String() != "2000" {
		fail("ppo-summary: expected pendingTotal 2000, got %s", summary.PendingTotal)
	}
}

func verifyTopCustomers(client *http.Client) {
	var rows []struct {
		CustomerID   string      `json:"customerId"`
		TotalRevenue json.Number `json:"totalRevenue"`
		OrderCount   int         `json:"orderCount"`
	}
	if err := getJSON(client, "/analytics/top-customers?limit=10", &rows); err != nil {
		fail("top-customers: %v", err)
	}
	if len(rows) != customerCount {
		fail("top-customers: expected %d rows, got %d", customerCount, len(rows))
	}
	for _, row := range rows {
		if row.TotalRevenue.String() != "100" || row.OrderCount != 1 {
			fail("top-customers: customer %s expected revenue 100 from 1 order, got %s from %d",
				row.CustomerID, row.TotalRevenue, row.OrderCount)
		}
	}
}

func verifyCompletionRate(client *http.Client) {
	var rows []struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	}
	if err := getJSON(client, "/analytics/completion-rate", &rows); err != nil {
		fail("completion-rate: %v", err)
	}
	if len(rows) != 1 {
		fail("completion-rate: expected 1 row, got %d", len(rows))
	}
	wantTotal := customerCount * ordersPerCust
	if rows[0].Total != wantTotal || rows[0].Completed != customerCount {
		fail("completion-rate: expected %d/%d, got %d/%d",
			customerCount, wantTotal, rows[0].Completed, rows[0].Total)
	}
}

func registerCustomer(client *http.Client, index int) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	status, err := postJSON(client, "/customers", map[string]string{
		"name":    fmt.Sprintf("Customer %02d", index),
		"phone":   phoneFor(index),
		"address": fmt.Sprintf("%d Mill Road", index+1),
	}, &created)
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("expected 201, got %d", status)
	}
	return created.ID, nil
}

func phoneFor(index int) string {
	return fmt.Sprintf("01234567%02d", index)
}

func postJSON(client *http.Client, path string, body any, out any) (int, error) {
	return sendJSON(client, http.MethodPost, path, body, out)
}

func patchJSON(client *http.Client, path string, body any) (int, error) {
	return sendJSON(client, http.MethodPatch, path, body, nil)
}

func sendJSON(client *http.Client, method, path string, body any, out any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func getJSON(client *http.Client, path string, out any) error {
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected 200, got %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}
