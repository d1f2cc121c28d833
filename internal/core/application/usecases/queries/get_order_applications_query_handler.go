package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderApplicationsQueryHandler lists the pending applications for an
// order. Ownership is checked against the orders table before anything is
// returned: a requester who does not own the order gets
// order.ErrOrderNotOwnedByAccount, never a partial result.
type GetOrderApplicationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderApplicationsQueryHandler creates a handler for application list queries.
func NewGetOrderApplicationsQueryHandler(db *gorm.DB) GetOrderApplicationsQueryHandler {
	return GetOrderApplicationsQueryHandler{db: db}
}

// Handle returns the order's non-skip applications, oldest first, with
// short worker profiles joined in.
func (h GetOrderApplicationsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderApplicationsQuery,
) ([]GetOrderApplicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var customerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT customer_id FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return nil, err
	}

	if customerID != query.RequesterID().Bytes() {
		return nil, order.ErrOrderNotOwnedByAccount
	}

	applications := make([]GetOrderApplicationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ap.id,
			ap.worker_id,
			a.name,
			a.username,
			ap.proposed_price,
			ap.message,
			ap.created_at
		FROM applications ap
		JOIN accounts a ON a.id = ap.worker_id
		WHERE ap.order_id = ? AND ap.skipped = false
		ORDER BY ap.created_at ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, workerID  uuid.UUID
			proposedPrice sql.NullInt64
			createdAt     time.Time
			item          GetOrderApplicationsQueryResponse
		)

		err = rows.Scan(
			&id,
			&workerID,
			&item.WorkerName,
			&item.WorkerUsername,
			&proposedPrice,
			&item.Message,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		applicationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = applicationID

		wID, wErr := kernel.UUIDFromBytes(workerID[:])
		if wErr != nil {
			return nil, wErr
		}
		item.WorkerID = wID

		if proposedPrice.Valid {
			price := int(proposedPrice.Int64)
			item.ProposedPrice = &price
		}
		item.CreatedAt = createdAt

		applications = append(applications, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
