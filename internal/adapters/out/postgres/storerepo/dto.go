// Package storerepo provides the GORM-backed repository for store
// aggregates.
package storerepo

import (
	"bookstore/internal/core/domain/model/store"
)

// StoreDTO is the database representation of a store.
type StoreDTO struct {
	ID      string `gorm:"primaryKey"`
	OwnerID string `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:      aggregate.ID(),
		OwnerID: aggregate.OwnerID(),
	}
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	return store.RestoreStore(dto.ID, dto.OwnerID)
}
