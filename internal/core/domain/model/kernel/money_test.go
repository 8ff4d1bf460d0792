package kernel_test

import (
	"testing"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(6000)

		require.NoError(t, err)
		assert.Equal(t, int64(6000), m.Amount())
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.NewMoney(60)
	other, _ := kernel.NewMoney(40)

	assert.Equal(t, int64(100), price.Add(other).Amount())
	assert.Equal(t, int64(180), price.Mul(3).Amount())
	assert.True(t, other.LessThan(price))
	assert.False(t, price.LessThan(other))
	assert.False(t, price.LessThan(price))
}

func TestZeroMoney(t *testing.T) {
	assert.True(t, kernel.ZeroMoney().IsZero())
	assert.Equal(t, int64(0), kernel.ZeroMoney().Amount())
}
