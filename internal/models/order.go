package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the raw status stored on an order. StatusFulfilled is a
// legacy value still present on historical records; reporting treats it as
// a synonym for StatusDispatched.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusDispatched OrderStatus = "Dispatched"
	StatusFulfilled  OrderStatus = "Fulfilled"
)

// IsKnownStatus reports whether s is a value the API accepts on writes.
// Reads tolerate anything (unknown values normalize to Pending in reports).
func IsKnownStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusDispatched, StatusFulfilled:
		return true
	}
	return false
}

// ReportingStatus is the two-valued collapse of OrderStatus used by all
// aggregate reports.
type ReportingStatus string

const (
	ReportingPending   ReportingStatus = "Pending"
	ReportingCompleted ReportingStatus = "Completed"
)

type Priority string

const (
	PriorityHigh Priority = "High"
	PriorityLow  Priority = "Low"
)

func IsKnownPriority(p Priority) bool {
	return p == PriorityHigh || p == PriorityLow
}

const (
	// SalesmanNotApplicable is the sentinel for orders without an assigned salesman.
	SalesmanNotApplicable = "N/A"

	DefaultPaymentTermDays = 30
)

// IsValidPaymentTerm reports whether days is one of the supported payment terms.
func IsValidPaymentTerm(days int) bool {
	return days == 30 || days == 60
}

// Order is a purchase order ("PPO") raised against a customer.
// PaymentDueDate is always derived: CreatedAt + PaymentTermDays days,
// recomputed from CreatedAt whenever the term changes.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	Value           decimal.Decimal `json:"ppoValue"`
	Type            string          `json:"ppoType"`
	Description     string          `json:"ppoDescription"`
	Status          OrderStatus     `json:"status"`
	PendingRemark   string          `json:"pendingRemark,omitempty"`
	SalesmanName    string          `json:"salesmanName"`
	Priority        Priority        `json:"priority"`
	PaymentTermDays int             `json:"paymentTermDays"`
	PaymentDueDate  time.Time       `json:"paymentDueDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}
