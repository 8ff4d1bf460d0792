// Package inventoryrepo provides the GORM-backed repository for inventory
// lines, including the guarded atomic stock primitives.
package inventoryrepo

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/store"
)

// InventoryLineDTO is the database representation of one (store, book)
// inventory record. Price may be null when listing-time metadata carried
// no parsable price; the denormalized columns feed the search
// collaborator and are not consulted by the settlement engine.
type InventoryLineDTO struct {
	StoreID  string `gorm:"primaryKey"`
	BookID   string `gorm:"primaryKey"`
	BookInfo string
	Stock    int64 `gorm:"not null;default:0;check:stock >= 0"`
	Price    *int64
	Title    string
	Author   string
	ISBN     string `gorm:"column:isbn"`
	PubYear  *int64
	Pages    *int64
	TextBlob string
}

// TableName overrides GORM's default naming to use "inventory_lines".
func (InventoryLineDTO) TableName() string {
	return "inventory_lines"
}

func fromDomain(aggregate *store.InventoryLine) InventoryLineDTO {
	var price *int64
	if p := aggregate.Price(); p != nil {
		amount := p.Amount()
		price = &amount
	}

	return InventoryLineDTO{
		StoreID:  aggregate.StoreID(),
		BookID:   aggregate.BookID(),
		BookInfo: aggregate.BookInfo(),
		Stock:    aggregate.Stock(),
		Price:    price,
		Title:    aggregate.Title(),
		Author:   aggregate.Author(),
		ISBN:     aggregate.ISBN(),
		PubYear:  aggregate.PubYear(),
		Pages:    aggregate.Pages(),
		TextBlob: aggregate.TextBlob(),
	}
}

func toDomain(dto InventoryLineDTO) (*store.InventoryLine, error) {
	var price *kernel.Money
	if dto.Price != nil {
		p, err := kernel.NewMoney(*dto.Price)
		if err != nil {
			return nil, err
		}
		price = &p
	}

	return store.RestoreInventoryLine(
		dto.StoreID,
		dto.BookID,
		dto.BookInfo,
		dto.Stock,
		price,
		dto.Title,
		dto.Author,
		dto.ISBN,
		dto.PubYear,
		dto.Pages,
		dto.TextBlob,
	)
}
