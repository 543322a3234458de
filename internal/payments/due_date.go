package payments

import (
	"time"

	"ppo-ops/internal/models"
	"ppo-ops/internal/reports"
)

const (
	// DefaultDueSoonThresholdDays is the inclusive window, in days before the
	// payment due date, inside which an order counts as due-soon.
	DefaultDueSoonThresholdDays = 5

	// DefaultStalePendingThresholdDays is the age, in days since creation, at
	// which a still-pending order counts as stale. This is a separate rule
	// from payment-due tracking: it runs off CreatedAt, not PaymentDueDate.
	DefaultStalePendingThresholdDays = 5
)

type State string

const (
	StateNotApplicable State = "NotApplicable"
	StateOverdue       State = "Overdue"
	StateDueSoon       State = "DueSoon"
	StateOnTrack       State = "OnTrack"
)

// Classification is the payment-due verdict for one order at one reference
// date. Days carries days past due for Overdue, days left otherwise, and is
// zero for NotApplicable.
type Classification struct {
	State State `json:"state"`
	Days  int   `json:"days"`
}

// ComputeDueDate returns createdAt plus termDays calendar days, rolling
// over month and year boundaries.
func ComputeDueDate(createdAt time.Time, termDays int) time.Time {
	return createdAt.AddDate(0, 0, termDays)
}

// DaysBetween returns the number of whole calendar days from the date of
// `from` to the date of `to` (negative when `to` is earlier). Both are
// compared as UTC calendar dates, so the time-of-day and zone of either
// input cannot shift the result.
func DaysBetween(from, to time.Time) int {
	f := from.UTC()
	t := to.UTC()
	fDate := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	tDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(tDate.Sub(fDate).Hours() / 24)
}

// Classifier applies the payment-due and stale-pending rules with
// configurable thresholds. The zero thresholds are replaced with the
// defaults so a zero-value Classifier still behaves sensibly.
type Classifier struct {
	dueSoonDays      int
	stalePendingDays int
}

func NewClassifier(dueSoonDays, stalePendingDays int) *Classifier {
	if dueSoonDays <= 0 {
		dueSoonDays = DefaultDueSoonThresholdDays
	}
	if stalePendingDays <= 0 {
		stalePendingDays = DefaultStalePendingThresholdDays
	}
	return &Classifier{dueSoonDays: dueSoonDays, stalePendingDays: stalePendingDays}
}

// Classify categorizes an order's payment position relative to today.
// Completed orders and orders without a due date are NotApplicable. The
// reference date is always an explicit input, never the wall clock.
func (c *Classifier) Classify(dueDate time.Time, today time.Time, status models.ReportingStatus) Classification {
	if status == models.ReportingCompleted || dueDate.IsZero() {
		return Classification{State: StateNotApplicable}
	}

	daysUntilDue := DaysBetween(today, dueDate)
	switch {
	case daysUntilDue < 0:
		return Classification{State: StateOverdue, Days: -daysUntilDue}
	case daysUntilDue <= c.dueSoonDays:
		return Classification{State: StateDueSoon, Days: daysUntilDue}
	default:
		return Classification{State: StateOnTrack, Days: daysUntilDue}
	}
}

// ClassifyOrder is a convenience that normalizes the order's raw status
// before classifying against its payment due date.
func (c *Classifier) ClassifyOrder(order *models.Order, today time.Time) Classification {
	if order == nil {
		return Classification{State: StateNotApplicable}
	}
	return c.Classify(order.PaymentDueDate, today, reports.Normalize(order.Status))
}

// IsStalePending reports whether a pending order has sat unresolved long
// enough to flag: its age from CreatedAt has reached the stale threshold.
// Completed orders are never stale, regardless of age.
func (c *Classifier) IsStalePending(order *models.Order, today time.Time) bool {
	if order == nil || order.CreatedAt.IsZero() {
		return false
	}
	if reports.Normalize(order.Status) != models.ReportingPending {
		return false
	}
	return DaysBetween(order.CreatedAt, today) >= c.stalePendingDays
}
