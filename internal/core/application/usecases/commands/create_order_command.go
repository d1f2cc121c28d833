package commands

import (
	"errors"
	"strings"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrServiceCategoryIsRequired = errors.New("service category is required")
	ErrPriceIsInvalid            = errors.New("price must be greater than 0")
	ErrDurationIsRequired        = errors.New("duration is required")
	ErrAddressIsRequired         = errors.New("address is required")
)

// CreateOrderCommand represents a customer's request to publish a new
// order. The coordinate pair is validated into a GeoPoint at construction,
// so an invalid location never reaches the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	serviceCategory string
	price           int
	duration        string
	comment         string
	address         string
	photos          []string
	location        kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to publish a new order. The
// comment and photos are optional; everything else is validated, including
// the latitude/longitude ranges.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	serviceCategory string,
	price int,
	duration string,
	comment string,
	address string,
	photos []string,
	latitude float64,
	longitude float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		comment: comment,
		photos:  photos,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setServiceCategory(serviceCategory),
		cmd.setPrice(price),
		cmd.setDuration(duration),
		cmd.setAddress(address),
		cmd.setLocation(latitude, longitude),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ID of the requesting customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceCategory returns the order's service category.
func (c CreateOrderCommand) ServiceCategory() string {
	return c.serviceCategory
}

// Price returns the customer's offered price.
func (c CreateOrderCommand) Price() int {
	return c.price
}

// Duration returns the expected work duration text.
func (c CreateOrderCommand) Duration() string {
	return c.duration
}

// Comment returns the optional free-form comment.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// Address returns the human-readable address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Photos returns the attached photo object keys.
func (c CreateOrderCommand) Photos() []string {
	return c.photos
}

// Location returns the validated geographic point.
func (c CreateOrderCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setServiceCategory(serviceCategory string) error {
	if strings.TrimSpace(serviceCategory) == "" {
		return ErrServiceCategoryIsRequired
	}

	c.serviceCategory = serviceCategory
	return nil
}

func (c *CreateOrderCommand) setPrice(price int) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setDuration(duration string) error {
	if strings.TrimSpace(duration) == "" {
		return ErrDurationIsRequired
	}

	c.duration = duration
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLocation(latitude, longitude float64) error {
	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
