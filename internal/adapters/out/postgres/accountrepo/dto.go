// Package accountrepo provides the GORM-backed repository for account
// aggregates, including the guarded atomic balance primitives.
package accountrepo

import (
	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/domain/model/kernel"
)

// AccountDTO is the database representation of an account. The check
// constraint backs the balance invariant as a last line of defense; the
// guarded conditional debit is what actually prevents negative balances
// under concurrency.
type AccountDTO struct {
	ID       string `gorm:"primaryKey"`
	Password string `gorm:"not null"`
	Balance  int64  `gorm:"not null;default:0;check:balance >= 0"`
	Token    string
	Terminal string
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:       aggregate.ID(),
		Password: aggregate.Password(),
		Balance:  aggregate.Balance().Amount(),
		Token:    aggregate.Token(),
		Terminal: aggregate.Terminal(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}
	return account.RestoreAccount(dto.ID, dto.Password, balance, dto.Token, dto.Terminal)
}
