package accountrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("accountId", aggregate.ID(), err)
		}
		return errs.NewTransientStorageError("add account", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by identity.
func (r *GormAccountRepository) Get(ctx context.Context, id string) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accountId", id)
		}
		return nil, errs.NewTransientStorageError("get account", err)
	}

	return toDomain(dto)
}

// UpdateSession replaces the stored session token and terminal.
func (r *GormAccountRepository) UpdateSession(ctx context.Context, id string, token string, terminal string) error {
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{"token": token, "terminal": terminal})
	if result.Error != nil {
		return errs.NewTransientStorageError("update session", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accountId", id)
	}

	return nil
}

// UpdateCredential replaces password, token and terminal together.
func (r *GormAccountRepository) UpdateCredential(
	ctx context.Context,
	id string,
	password string,
	token string,
	terminal string,
) error {
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{"password": password, "token": token, "terminal": terminal})
	if result.Error != nil {
		return errs.NewTransientStorageError("update credential", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accountId", id)
	}

	return nil
}

// Delete removes the account.
func (r *GormAccountRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewTransientStorageError("delete account", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accountId", id)
	}

	return nil
}

// Credit adds amount to the balance unconditionally.
func (r *GormAccountRepository) Credit(ctx context.Context, id string, amount kernel.Money) error {
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount.Amount()))
	if result.Error != nil {
		return errs.NewTransientStorageError("credit balance", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accountId", id)
	}

	return nil
}

// Debit subtracts amount with the balance guard folded into the same
// statement. Zero rows affected means either a missing account or a
// balance below amount; both surface as insufficient funds.
func (r *GormAccountRepository) Debit(ctx context.Context, id string, amount kernel.Money) error {
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ? AND balance >= ?", id, amount.Amount()).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount.Amount()))
	if result.Error != nil {
		return errs.NewTransientStorageError("debit balance", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("insufficient funds", id)
	}

	return nil
}
