package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotOwnedByAccount is returned when an account other than the
	// order's customer attempts a lifecycle transition.
	ErrOrderNotOwnedByAccount = errors.New("order does not belong to the requesting account")
)

// Order is the aggregate root for a service request placed by a customer.
// It manages the lifecycle from publication through worker acceptance to
// completion.
//
// Invariants:
//   - id and customerID are valid UUIDs
//   - service category, duration and address are non-empty
//   - price is positive
//   - workerID is non-nil exactly when status is InProgress or Completed
//   - lifecycle transitions may only be requested by the owning customer
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	workerID        *kernel.UUID
	serviceCategory string
	price           int
	duration        string
	comment         string
	address         string
	photos          []string
	location        kernel.GeoPoint
	status          Status
	createdAt       time.Time
	guard           guard.ConstructorGuard
}

// NewOrder creates a new Order in Searching status with no worker assigned.
// The comment and photos are optional; everything else is validated.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceCategory string,
	price int,
	duration string,
	comment string,
	address string,
	photos []string,
	location kernel.GeoPoint,
) (*Order, error) {
	order := &Order{
		status:    Searching,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setServiceCategory(serviceCategory),
		order.setPrice(price),
		order.setDuration(duration),
		order.setAddress(address),
		order.setLocation(location),
	); err != nil {
		return nil, err
	}

	order.comment = comment
	order.setPhotos(photos)

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status and an optional worker, and
// verifies the status/worker consistency invariant.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	workerID *kernel.UUID,
	serviceCategory string,
	price int,
	duration string,
	comment string,
	address string,
	photos []string,
	location kernel.GeoPoint,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		comment:   comment,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
	order.setPhotos(photos)

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setServiceCategory(serviceCategory),
		order.setPrice(price),
		order.setDuration(duration),
		order.setAddress(address),
		order.setLocation(location),
		order.setStatus(status),
		order.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHaveWorker(order.workerID != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks that the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ID of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Worker returns the accepted worker's ID, or nil while the order is still
// searching.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// ServiceCategory returns the order's service category.
func (o *Order) ServiceCategory() string {
	return o.serviceCategory
}

// Price returns the current price. After acceptance this reflects the
// accepted application's proposed price if one was set.
func (o *Order) Price() int {
	return o.price
}

// Duration returns the expected work duration text.
func (o *Order) Duration() string {
	return o.duration
}

// Comment returns the optional free-form comment.
func (o *Order) Comment() string {
	return o.comment
}

// Address returns the human-readable address.
func (o *Order) Address() string {
	return o.address
}

// Photos returns a copy of the attached photo object keys.
func (o *Order) Photos() []string {
	photos := make([]string, len(o.photos))
	copy(photos, o.photos)
	return photos
}

// Location returns the geographic point of the order.
func (o *Order) Location() kernel.GeoPoint {
	return o.location
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given account is the order's customer.
func (o *Order) IsOwnedBy(accountID kernel.UUID) bool {
	return o.customerID.IsEqual(accountID)
}

// Cancel withdraws the order on behalf of its customer.
//
// Business rules:
//   - only the owning customer may cancel
//   - the order must still be in Searching status
func (o *Order) Cancel(requesterID kernel.UUID) error {
	if !o.IsOwnedBy(requesterID) {
		return ErrOrderNotOwnedByAccount
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Accept assigns a worker to the order on behalf of its customer and moves
// it to InProgress. When the accepted application proposed a price, that
// price replaces the customer's original one.
//
// Business rules:
//   - only the owning customer may accept
//   - the order must still be in Searching status
//   - the worker ID must be valid
//   - a proposed price, when present, must be positive
func (o *Order) Accept(requesterID kernel.UUID, workerID kernel.UUID, proposedPrice *int) error {
	if !o.IsOwnedBy(requesterID) {
		return ErrOrderNotOwnedByAccount
	}

	if err := workerID.Validate(); err != nil {
		return err
	}

	if proposedPrice != nil && *proposedPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"proposed price is invalid",
			fmt.Errorf("%d is not greater than 0", *proposedPrice),
		)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.workerID = &workerID
	if proposedPrice != nil {
		o.price = *proposedPrice
	}
	return nil
}

// Complete marks the order as done on behalf of its customer.
//
// Business rules:
//   - only the owning customer may complete
//   - the order must be in InProgress status
func (o *Order) Complete(requesterID kernel.UUID) error {
	if !o.IsOwnedBy(requesterID) {
		return ErrOrderNotOwnedByAccount
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setWorkerID(workerID *kernel.UUID) error {
	if workerID == nil {
		return nil
	}
	if err := workerID.Validate(); err != nil {
		return err
	}
	o.workerID = workerID
	return nil
}

func (o *Order) setServiceCategory(serviceCategory string) error {
	if strings.TrimSpace(serviceCategory) == "" {
		return errs.NewValueIsRequiredError("serviceCategory")
	}
	o.serviceCategory = serviceCategory
	return nil
}

func (o *Order) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is not greater than 0", price))
	}
	o.price = price
	return nil
}

func (o *Order) setDuration(duration string) error {
	if strings.TrimSpace(duration) == "" {
		return errs.NewValueIsRequiredError("duration")
	}
	o.duration = duration
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPhotos(photos []string) {
	if len(photos) == 0 {
		o.photos = nil
		return
	}
	o.photos = make([]string, len(photos))
	copy(o.photos, photos)
}
