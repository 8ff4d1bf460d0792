// Package orderrepo provides the GORM-backed repository for the transient
// order header and lines. Both tables empty out as orders settle: rows
// are deleted at payment completion and the status ledger becomes the
// only record.
package orderrepo

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order header.
type OrderDTO struct {
	ID        string `gorm:"primaryKey"`
	BuyerID   string `gorm:"not null;index"`
	StoreID   string `gorm:"not null"`
	CreatedTs int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database representation of one order line with its
// captured unit price.
type OrderLineDTO struct {
	OrderID string `gorm:"primaryKey"`
	BookID  string `gorm:"primaryKey"`
	Count   int64  `gorm:"not null"`
	Price   int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderLineDTO) {
	header := OrderDTO{
		ID:        aggregate.ID(),
		BuyerID:   aggregate.BuyerID(),
		StoreID:   aggregate.StoreID(),
		CreatedTs: aggregate.CreatedAt().Millis(),
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID: aggregate.ID(),
			BookID:  line.BookID(),
			Count:   line.Count(),
			Price:   line.UnitPrice().Amount(),
		})
	}

	return header, lines
}

func toDomain(header OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(lineDTOs))
	for _, dto := range lineDTOs {
		price, err := kernel.NewMoney(dto.Price)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(dto.BookID, dto.Count, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		header.ID,
		header.BuyerID,
		header.StoreID,
		lines,
		kernel.TimestampFromMillis(header.CreatedTs),
	)
}
