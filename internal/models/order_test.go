package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKnownStatus(StatusPending))
	assert.True(t, IsKnownStatus(StatusDispatched))
	assert.True(t, IsKnownStatus(StatusFulfilled))
	assert.False(t, IsKnownStatus(OrderStatus("Shipped")))
	assert.False(t, IsKnownStatus(OrderStatus("")))
}

func TestIsKnownPriority(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKnownPriority(PriorityHigh))
	assert.True(t, IsKnownPriority(PriorityLow))
	assert.False(t, IsKnownPriority(Priority("Medium")))
}

func TestIsValidPaymentTerm(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPaymentTerm(30))
	assert.True(t, IsValidPaymentTerm(60))
	assert.False(t, IsValidPaymentTerm(0))
	assert.False(t, IsValidPaymentTerm(45))
	assert.False(t, IsValidPaymentTerm(-30))
}
