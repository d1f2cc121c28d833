package commands

import (
	"errors"
	"strings"

	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrTgIDIsInvalid  = errors.New("tg id must be greater than 0")
	ErrNameIsRequired = errors.New("name is required")
)

// RegisterAccountCommand represents the onboarding request coming from the
// bot: bind a Telegram user to a marketplace account. Repeated registration
// for a known Telegram ID refreshes the profile instead of creating a
// duplicate.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	tgID            int64
	username        string
	name            string
	role            account.Role
	serviceCategory string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register or refresh an
// account. The username and (for customers) the service category are
// optional; everything else is validated.
func NewRegisterAccountCommand(
	tgID int64,
	username string,
	name string,
	role account.Role,
	serviceCategory string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		username:        username,
		serviceCategory: serviceCategory,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTgID(tgID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// TgID returns the Telegram user ID to bind.
func (c RegisterAccountCommand) TgID() int64 {
	return c.tgID
}

// Username returns the optional Telegram username.
func (c RegisterAccountCommand) Username() string {
	return c.username
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Role returns the requested marketplace role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// ServiceCategory returns the worker's service category.
func (c RegisterAccountCommand) ServiceCategory() string {
	return c.serviceCategory
}

func (c *RegisterAccountCommand) setTgID(tgID int64) error {
	if tgID <= 0 {
		return ErrTgIDIsInvalid
	}

	c.tgID = tgID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
