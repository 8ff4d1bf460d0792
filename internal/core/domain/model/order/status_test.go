package order_test

import (
	"testing"

	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.Created, order.Paid, order.Shipped, order.Receiving,
		order.Received, order.Canceled, order.TimedOut,
	} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Status("delivered").Validate())
	require.Error(t, order.Status("").Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{order.Canceled, order.TimedOut, order.Received}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}

	active := []order.Status{order.Created, order.Paid, order.Shipped, order.Receiving}
	for _, s := range active {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_Payable(t *testing.T) {
	assert.True(t, order.Created.Payable())

	for _, s := range []order.Status{
		order.Paid, order.Shipped, order.Received, order.Canceled, order.TimedOut,
	} {
		assert.False(t, s.Payable(), s.String())
	}
}

func TestStatus_Shippable(t *testing.T) {
	assert.True(t, order.Paid.Shippable())
	assert.True(t, order.Shipped.Shippable())

	for _, s := range []order.Status{
		order.Created, order.Received, order.Canceled, order.TimedOut, order.Receiving,
	} {
		assert.False(t, s.Shippable(), s.String())
	}
}

func TestStatus_Receivable(t *testing.T) {
	assert.True(t, order.Shipped.Receivable())
	assert.True(t, order.Receiving.Receivable())

	for _, s := range []order.Status{
		order.Created, order.Paid, order.Received, order.Canceled, order.TimedOut,
	} {
		assert.False(t, s.Receivable(), s.String())
	}
}
