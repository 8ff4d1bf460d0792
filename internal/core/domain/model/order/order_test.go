package order_test

import (
	"strings"
	"testing"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewLine(t *testing.T) {
	t.Run("creates line with positive count", func(t *testing.T) {
		line, err := order.NewLine("b-1", 3, mustMoney(t, 60))

		require.NoError(t, err)
		assert.Equal(t, "b-1", line.BookID())
		assert.Equal(t, int64(3), line.Count())
		assert.Equal(t, int64(180), line.Subtotal().Amount())
	})

	t.Run("rejects zero count", func(t *testing.T) {
		_, err := order.NewLine("b-1", 0, mustMoney(t, 60))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count")
	})

	t.Run("rejects negative count", func(t *testing.T) {
		_, err := order.NewLine("b-1", -2, mustMoney(t, 60))
		require.Error(t, err)
	})

	t.Run("requires book id", func(t *testing.T) {
		_, err := order.NewLine("", 1, mustMoney(t, 60))
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	createdAt := kernel.TimestampFromMillis(1700000000000)
	line, _ := order.NewLine("b-1", 2, mustMoney(t, 50))

	t.Run("derives identity from buyer, store and token", func(t *testing.T) {
		o, err := order.NewOrder("alice", "s-1", []order.Line{line}, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, strings.HasPrefix(o.ID(), "alice_s-1_"))
		assert.Equal(t, "alice", o.BuyerID())
		assert.Equal(t, "s-1", o.StoreID())
		assert.Equal(t, createdAt.Millis(), o.CreatedAt().Millis())
	})

	t.Run("identities are unique per order", func(t *testing.T) {
		a, _ := order.NewOrder("alice", "s-1", []order.Line{line}, createdAt)
		b, _ := order.NewOrder("alice", "s-1", []order.Line{line}, createdAt)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("requires buyer, store and lines", func(t *testing.T) {
		_, err := order.NewOrder("", "s-1", []order.Line{line}, createdAt)
		assert.ErrorIs(t, err, order.ErrBuyerIDIsRequired)

		_, err = order.NewOrder("alice", "", []order.Line{line}, createdAt)
		assert.ErrorIs(t, err, order.ErrStoreIDIsRequired)

		_, err = order.NewOrder("alice", "s-1", nil, createdAt)
		assert.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})
}

func TestOrder_Total(t *testing.T) {
	createdAt := kernel.TimestampNow()
	l1, _ := order.NewLine("b-1", 2, mustMoney(t, 50))
	l2, _ := order.NewLine("b-2", 1, mustMoney(t, 30))

	o, err := order.NewOrder("alice", "s-1", []order.Line{l1, l2}, createdAt)

	require.NoError(t, err)
	assert.Equal(t, int64(130), o.Total().Amount())
}

func TestOrder_IsPlacedBy(t *testing.T) {
	createdAt := kernel.TimestampNow()
	line, _ := order.NewLine("b-1", 1, mustMoney(t, 10))
	o, _ := order.NewOrder("alice", "s-1", []order.Line{line}, createdAt)

	assert.True(t, o.IsPlacedBy("alice"))
	assert.False(t, o.IsPlacedBy("mallory"))
}

func TestStatusEvent(t *testing.T) {
	ts := kernel.TimestampFromMillis(1700000000000)

	t.Run("new event starts without sequence", func(t *testing.T) {
		ev, err := order.NewStatusEvent("o-1", order.Created, ts, "alice", "s-1")

		require.NoError(t, err)
		assert.Zero(t, ev.Seq())
		assert.Equal(t, order.Created, ev.Status())
		assert.Equal(t, "alice", ev.UserID())
		assert.Equal(t, "s-1", ev.StoreID())
	})

	t.Run("restore carries the assigned sequence", func(t *testing.T) {
		ev, err := order.RestoreStatusEvent(42, "o-1", order.Paid, ts, "alice", "s-1")

		require.NoError(t, err)
		assert.Equal(t, int64(42), ev.Seq())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := order.NewStatusEvent("", order.Created, ts, "alice", "s-1")
		assert.ErrorIs(t, err, order.ErrOrderIDIsRequired)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.NewStatusEvent("o-1", order.Status("bogus"), ts, "alice", "s-1")
		require.Error(t, err)
	})
}
