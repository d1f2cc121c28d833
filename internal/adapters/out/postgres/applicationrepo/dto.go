// Package applicationrepo provides the GORM-based persistence adapter for
// worker decisions (applications and skips). The composite unique index on
// (order_id, worker_id) is the storage-level guarantee that a worker makes
// at most one decision per order, under any interleaving of requests.
package applicationrepo

import (
	"time"

	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO represents the database structure for persisting worker
// decisions.
type ApplicationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_order_worker"`
	WorkerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_order_worker"`
	ProposedPrice *int
	Message       string
	Skipped       bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (ApplicationDTO) TableName() string {
	return "applications"
}

func fromDomain(aggregate *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		WorkerID:      aggregate.WorkerID().Bytes(),
		ProposedPrice: aggregate.ProposedPrice(),
		Message:       aggregate.Message(),
		Skipped:       aggregate.IsSkip(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(
		id, orderID, workerID, dto.ProposedPrice, dto.Message, dto.Skipped, dto.CreatedAt)
}
