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

// GetCustomerOrdersQueryHandler lists a customer's own orders straight
// from the database, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns every order the customer has placed, in any status.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			service_category,
			price,
			duration,
			comment,
			address,
			photos,
			location_latitude,
			location_longitude,
			status,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                  uuid.UUID
			workerID            uuid.NullUUID
			photosRaw           []byte
			latitude, longitude float64
			status              int
			createdAt           time.Time
			item                GetCustomerOrdersQueryResponse
		)

		err = rows.Scan(
			&id,
			&workerID,
			&item.ServiceCategory,
			&item.Price,
			&item.Duration,
			&item.Comment,
			&item.Address,
			&photosRaw,
			&latitude,
			&longitude,
			&status,
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

		if workerID.Valid {
			wID, wErr := kernel.UUIDFromBytes(workerID.UUID[:])
			if wErr != nil {
				return nil, wErr
			}
			item.WorkerID = &wID
		}

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
		item.Status = order.Status(status).String()
		item.CreatedAt = createdAt

		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
