package queries

import (
	"context"
	"encoding/json"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkerFeedQueryHandler reads the matching feed for a worker.
// Eligibility is decided entirely in SQL: an order shows up while it is
// still searching, matches the worker's service category, and carries no
// decision (application or skip) from this worker. Newest orders first.
type GetWorkerFeedQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerFeedQueryHandler creates a handler for worker feed queries.
func NewGetWorkerFeedQueryHandler(db *gorm.DB) GetWorkerFeedQueryHandler {
	return GetWorkerFeedQueryHandler{db: db}
}

// Handle returns up to BatchSize orders the worker has not decided on yet.
func (h GetWorkerFeedQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerFeedQuery,
) ([]GetWorkerFeedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	feed := make([]GetWorkerFeedQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.service_category,
			o.price,
			o.duration,
			o.comment,
			o.address,
			o.photos,
			o.location_latitude,
			o.location_longitude,
			o.created_at
		FROM orders o
		JOIN accounts a ON a.id = ?
		WHERE o.status = ?
		  AND o.service_category = a.service_category
		  AND NOT EXISTS (
			SELECT 1 FROM applications ap
			WHERE ap.order_id = o.id AND ap.worker_id = ?
		  )
		ORDER BY o.created_at DESC
		LIMIT ?
	`, query.WorkerID().Bytes(), order.Searching, query.WorkerID().Bytes(), query.BatchSize()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                  uuid.UUID
			photosRaw           []byte
			latitude, longitude float64
			createdAt           time.Time
			item                GetWorkerFeedQueryResponse
		)

		err = rows.Scan(
			&id,
			&item.ServiceCategory,
			&item.Price,
			&item.Duration,
			&item.Comment,
			&item.Address,
			&photosRaw,
			&latitude,
			&longitude,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = orderID

		if len(photosRaw) > 0 {
			if jsonErr := json.Unmarshal(photosRaw, &item.Photos); jsonErr != nil {
				return nil, jsonErr
			}
		}

		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		item.Location = location
		item.CreatedAt = createdAt

		feed = append(feed, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feed, nil
}
