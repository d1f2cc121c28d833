// Package orderrepo provides the GORM-based persistence adapter for order
// aggregates, including the mapping between domain entities and their
// database representation.
package orderrepo

import (
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed for the two hot paths: the worker feed (status +
// category + created_at) and the customer's order list.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkerID        *uuid.UUID `gorm:"type:uuid;index"`
	ServiceCategory string     `gorm:"not null;index"`
	Price           int        `gorm:"not null"`
	Duration        string     `gorm:"not null"`
	Comment         string
	Address         string      `gorm:"not null"`
	Photos          []string    `gorm:"serializer:json;type:jsonb"`
	Location        GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status          int         `gorm:"not null;index"`
	CreatedAt       time.Time   `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents the embedded geographic coordinates within the
// orders table. Latitude first, longitude second.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		WorkerID:        workerID,
		ServiceCategory: aggregate.ServiceCategory(),
		Price:           aggregate.Price(),
		Duration:        aggregate.Duration(),
		Comment:         aggregate.Comment(),
		Address:         aggregate.Address(),
		Photos:          aggregate.Photos(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		workerID,
		dto.ServiceCategory,
		dto.Price,
		dto.Duration,
		dto.Comment,
		dto.Address,
		dto.Photos,
		location,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
