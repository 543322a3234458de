package models

import "github.com/shopspring/decimal"

// One structural type per report kind. Field names are the externally
// observed JSON contract; the HTTP layer encodes these unchanged.

type MonthlyGrowthRow struct {
	Year         int `json:"year"`
	Month        int `json:"month"`
	NewCustomers int `json:"newCustomers"`
}

type CustomersServedRow struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type RevenueTrendRow struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	OrderCount    int             `json:"orderCount"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

type TopCustomerRow struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	OrderCount   int             `json:"orderCount"`
}

type StatusDistributionRow struct {
	Status     string          `json:"status"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

type CompletionRateRow struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	CompletionRate decimal.Decimal `json:"completionRate"` // 0-100, one decimal place
}

// FinancialSummary is the pending/dispatched value split, either all-time
// or restricted to one month.
type FinancialSummary struct {
	PendingTotal    decimal.Decimal `json:"pendingTotal"`
	DispatchedTotal decimal.Decimal `json:"dispatchedTotal"`
}
