package applicationrepo

import (
	"context"
	"errors"

	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/ports"
	"ustabar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormApplicationRepository creates a new GORM application repository.
func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new decision to the database. A violation of the
// (order_id, worker_id) unique index surfaces as
// ports.ErrDecisionAlreadyMade; the connection is opened with
// TranslateError so the driver's duplicate-key error arrives as
// gorm.ErrDuplicatedKey.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDecisionAlreadyMade
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a decision by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all non-skip applications for an order, oldest
// first.
func (r *GormApplicationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*application.Application, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ApplicationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND skipped = false", orderID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	applications := make([]*application.Application, 0, len(dtos))
	for _, dto := range dtos {
		app, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}

	return applications, nil
}
