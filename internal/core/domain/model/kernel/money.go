package kernel

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Money is an amount in the smallest currency unit. It is a value object:
// immutable, comparable, and never negative. Account balances and captured
// order prices are expressed as Money; all arithmetic that could go below
// zero must instead happen as a guarded atomic update in storage.
//
// Example:
//
//	price, _ := kernel.NewMoney(6000)
//	total := price.Mul(3)
//	fmt.Println(total.Amount()) // 18000
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are invalid.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the zero amount. Used as the price fallback when item
// metadata carries no parsable price.
func ZeroMoney() Money {
	return Money{amount: 0}
}

// Amount returns the value in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(qty int64) Money {
	return Money{amount: m.amount * qty}
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}
