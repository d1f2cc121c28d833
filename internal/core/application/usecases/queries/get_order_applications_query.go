package queries

import (
	"errors"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

var (
	ErrGetOrderApplicationsQueryIsNotConstructed = errors.New(
		"GetOrderApplicationsQuery must be created via NewGetOrderApplicationsQuery constructor",
	)
)

// GetOrderApplicationsQuery retrieves the applications submitted for an
// order. Only the order's owner may see them; skips are never returned.
type GetOrderApplicationsQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderApplicationsQuery creates a query for the given order on
// behalf of the requesting account.
func NewGetOrderApplicationsQuery(orderID, requesterID kernel.UUID) (GetOrderApplicationsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderApplicationsQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := requesterID.Validate(); err != nil {
		return GetOrderApplicationsQuery{}, errs.NewValueIsRequiredErrorWithCause("requesterID", err)
	}

	return GetOrderApplicationsQuery{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderApplicationsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderApplicationsQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderApplicationsQueryIsNotConstructed)
}

// GetOrderApplicationsQueryResponse is one worker's application together
// with enough profile data for the customer to choose. ProposedPrice is
// nil when the worker accepted the listed price.
type GetOrderApplicationsQueryResponse struct {
	ID             kernel.UUID
	WorkerID       kernel.UUID
	WorkerName     string
	WorkerUsername string
	ProposedPrice  *int
	Message        string
	CreatedAt      time.Time
}
