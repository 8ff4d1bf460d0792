// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrBuyerIDIsRequired = errors.New("buyer id is required")
	ErrPageIsInvalid     = errors.New("page must be positive")
	ErrSizeIsInvalid     = errors.New("size must be positive")
)

// ListOrdersQuery retrieves a buyer's order history: one row per order,
// carrying the order's current (most recent) status. An optional status
// filter restricts the result to orders currently in that status.
//
// Example:
//
//	query, err := NewListOrdersQuery("alice", order.Shipped, 1, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid history request: %w", err)
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	buyerID string
	status  order.Status
	page    int
	size    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a buyer's order history.
// An empty status means no filter. Page numbering starts at 1.
func NewListOrdersQuery(buyerID string, status order.Status, page int, size int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setBuyerID(buyerID),
		query.setStatus(status),
		query.setPage(page),
		query.setSize(size),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose history is requested.
func (q ListOrdersQuery) BuyerID() string {
	return q.buyerID
}

// Status returns the optional status filter; empty means unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersQuery) Size() int {
	return q.size
}

func (q *ListOrdersQuery) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return ErrBuyerIDIsRequired
	}

	q.buyerID = buyerID
	return nil
}

func (q *ListOrdersQuery) setStatus(status order.Status) error {
	if status == "" {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 1 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setSize(size int) error {
	if size < 1 {
		return ErrSizeIsInvalid
	}

	q.size = size
	return nil
}

// ListOrdersQueryResponse is one page of a buyer's order history plus the
// total number of matching orders.
type ListOrdersQueryResponse struct {
	Orders []OrderSummary
	Total  int64
}

// OrderSummary is one order's current state in the history read model.
type OrderSummary struct {
	OrderID   string
	Status    order.Status
	Timestamp int64
	StoreID   string
}
