// Package accountrepo provides the GORM-based persistence adapter for
// account aggregates, including the mapping between domain entities and
// their database representation.
package accountrepo

import (
	"time"

	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. The Telegram user ID carries a unique index: it is the
// authentication lookup key and binds each Telegram user to exactly one
// account.
type AccountDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TgID            int64     `gorm:"uniqueIndex;not null"`
	Username        string
	Name            string `gorm:"not null"`
	Role            string `gorm:"not null"`
	ServiceCategory string
	CreatedAt       time.Time
}

// TableName overrides GORM's default naming convention.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:              aggregate.ID().Bytes(),
		TgID:            aggregate.TgID(),
		Username:        aggregate.Username(),
		Name:            aggregate.Name(),
		Role:            aggregate.Role().String(),
		ServiceCategory: aggregate.ServiceCategory(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.TgID, dto.Username, dto.Name, role, dto.ServiceCategory, dto.CreatedAt)
}
