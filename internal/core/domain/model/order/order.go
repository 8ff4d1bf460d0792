package order

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDIsRequired is returned when the order identity is empty.
	ErrOrderIDIsRequired = errors.New("order id is required")

	// ErrBuyerIDIsRequired is returned when the buyer identity is empty.
	ErrBuyerIDIsRequired = errors.New("buyer id is required")

	// ErrStoreIDIsRequired is returned when the store identity is empty.
	ErrStoreIDIsRequired = errors.New("store id is required")

	// ErrOrderHasNoLines is returned when an order is created without items.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// NewID derives a globally unique order identity from the buyer, the store
// and a fresh uniqueness token. The buyer and store prefixes keep the
// identity self-describing in logs and in the status ledger.
func NewID(buyerID string, storeID string) string {
	return fmt.Sprintf("%s_%s_%s", buyerID, storeID, kernel.NewUUID().String())
}

// Line is one immutable (item, quantity, captured unit price) entry of an
// order. The price is captured from the catalog at order-creation time and
// never re-read: settlement totals are computed from these captured values.
type Line struct {
	bookID    string
	count     int64
	unitPrice kernel.Money
}

// NewLine creates an order line. Quantity must be positive.
func NewLine(bookID string, count int64, unitPrice kernel.Money) (Line, error) {
	if bookID == "" {
		return Line{}, errs.NewValueIsRequiredError("bookId")
	}
	if count <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"count",
			fmt.Errorf("%d is not greater than 0", count),
		)
	}

	return Line{bookID: bookID, count: count, unitPrice: unitPrice}, nil
}

// BookID returns the item identity.
func (l Line) BookID() string { return l.bookID }

// Count returns the ordered quantity.
func (l Line) Count() int64 { return l.count }

// UnitPrice returns the price captured at order-creation time.
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money { return l.unitPrice.Mul(l.count) }

// Order is the transient order header plus its lines. It exists only
// between creation and successful payment: once paid, header and lines are
// deleted so the order can never be settled twice, and its history lives
// on solely in the status ledger.
//
// Invariants:
//   - At least one line, every line with positive quantity
//   - Line prices are the captured listing-time prices, immutable
//   - Creation timestamp has millisecond precision and is shared by the
//     header and the CREATED ledger event
type Order struct {
	id        string
	buyerID   string
	storeID   string
	createdAt kernel.Timestamp
	lines     []Line

	guard kernel.ConstructorGuard
}

// NewOrder creates an order with a freshly derived identity.
func NewOrder(buyerID string, storeID string, lines []Line, createdAt kernel.Timestamp) (*Order, error) {
	if buyerID == "" {
		return nil, ErrBuyerIDIsRequired
	}
	if storeID == "" {
		return nil, ErrStoreIDIsRequired
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	return &Order{
		id:        NewID(buyerID, storeID),
		buyerID:   buyerID,
		storeID:   storeID,
		createdAt: createdAt,
		lines:     lines,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(id string, buyerID string, storeID string, lines []Line, createdAt kernel.Timestamp) (*Order, error) {
	if id == "" {
		return nil, ErrOrderIDIsRequired
	}
	if buyerID == "" {
		return nil, ErrBuyerIDIsRequired
	}
	if storeID == "" {
		return nil, ErrStoreIDIsRequired
	}

	return &Order{
		id:        id,
		buyerID:   buyerID,
		storeID:   storeID,
		createdAt: createdAt,
		lines:     lines,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// ID returns the order identity.
func (o *Order) ID() string {
	return o.id
}

// BuyerID returns the buyer identity.
func (o *Order) BuyerID() string {
	return o.buyerID
}

// StoreID returns the store identity.
func (o *Order) StoreID() string {
	return o.storeID
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() kernel.Timestamp {
	return o.createdAt
}

// Lines returns the order lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// Total sums unit price times quantity over all lines, from the captured
// prices only.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsPlacedBy reports whether the given account created this order.
func (o *Order) IsPlacedBy(accountID string) bool {
	return o.buyerID == accountID
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}
