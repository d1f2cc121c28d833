package queries

import (
	"errors"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves all orders placed by a customer,
// newest first, regardless of status.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// GetCustomerOrdersQueryResponse is one of the customer's orders. WorkerID
// is nil while the order is still searching or after cancellation.
type GetCustomerOrdersQueryResponse struct {
	ID              kernel.UUID
	WorkerID        *kernel.UUID
	ServiceCategory string
	Price           int
	Duration        string
	Comment         string
	Address         string
	Photos          []string
	Location        kernel.GeoPoint
	Status          string
	CreatedAt       time.Time
}
