package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the aggregate root for a marketplace participant. Accounts are
// created exclusively through the onboarding command; request authentication
// only ever resolves an existing account by its Telegram ID.
//
// Invariants:
//   - id is a valid UUID
//   - tgID is positive and immutable after creation
//   - name is non-empty
//   - workers carry a non-empty service category; customers carry none
type Account struct {
	id              kernel.UUID
	tgID            int64
	username        string
	name            string
	role            Role
	serviceCategory string
	createdAt       time.Time
	guard           guard.ConstructorGuard
}

// NewAccount creates an Account for the onboarding flow. The username is
// optional; serviceCategory is required for workers and must be empty for
// customers.
func NewAccount(
	id kernel.UUID,
	tgID int64,
	username string,
	name string,
	role Role,
	serviceCategory string,
) (*Account, error) {
	account := &Account{
		username:  username,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setTgID(tgID),
		account.setName(name),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := account.setServiceCategory(serviceCategory); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
func RestoreAccount(
	id kernel.UUID,
	tgID int64,
	username string,
	name string,
	role Role,
	serviceCategory string,
	createdAt time.Time,
) (*Account, error) {
	account := &Account{
		username:  username,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setTgID(tgID),
		account.setName(name),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := account.setServiceCategory(serviceCategory); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks that the Account was created via a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// TgID returns the immutable Telegram user ID the account is bound to.
func (a *Account) TgID() int64 {
	return a.tgID
}

// Username returns the optional Telegram username.
func (a *Account) Username() string {
	return a.username
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Role returns the account's marketplace role.
func (a *Account) Role() Role {
	return a.role
}

// ServiceCategory returns the worker's service category. Empty for
// customers.
func (a *Account) ServiceCategory() string {
	return a.serviceCategory
}

// CreatedAt returns the creation timestamp (UTC).
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// IsWorker reports whether the account acts on the worker side.
func (a *Account) IsWorker() bool {
	return a.role == RoleWorker
}

// UpdateProfile refreshes the mutable profile fields from a repeated
// onboarding request. Telegram ID and role stay fixed.
func (a *Account) UpdateProfile(username, name string) error {
	if err := a.setName(name); err != nil {
		return err
	}
	a.username = username
	return nil
}

// ChangeServiceCategory updates a worker's service category.
func (a *Account) ChangeServiceCategory(serviceCategory string) error {
	if a.role != RoleWorker {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%s account cannot have a service category", a.role),
		)
	}
	if strings.TrimSpace(serviceCategory) == "" {
		return errs.NewValueIsRequiredError("serviceCategory")
	}

	a.serviceCategory = serviceCategory
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setTgID(tgID int64) error {
	if tgID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tgID is invalid", fmt.Errorf("%d is not greater than 0", tgID))
	}
	a.tgID = tgID
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setServiceCategory(serviceCategory string) error {
	if a.role == RoleWorker && strings.TrimSpace(serviceCategory) == "" {
		return errs.NewValueIsRequiredError("serviceCategory")
	}
	if a.role == RoleCustomer && serviceCategory != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceCategory is invalid",
			fmt.Errorf("customer account cannot have a service category"),
		)
	}

	a.serviceCategory = serviceCategory
	return nil
}
