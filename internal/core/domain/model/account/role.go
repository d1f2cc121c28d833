package account

import (
	"fmt"

	"ustabar/internal/pkg/errs"
)

// Role determines which side of the marketplace an account acts on.
// Customers publish orders; workers browse the feed and apply.
type Role string

const (
	// RoleCustomer can create orders and manage their lifecycle.
	RoleCustomer Role = "customer"

	// RoleWorker can browse the feed, apply to and skip orders.
	RoleWorker Role = "worker"
)

// RoleFromString parses a role name as stored in persistence or received
// from the onboarding flow.
func RoleFromString(value string) (Role, error) {
	role := Role(value)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleWorker:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
