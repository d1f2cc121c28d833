package queries

import (
	"errors"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

var (
	ErrGetAccountByTelegramIDQueryIsNotConstructed = errors.New(
		"GetAccountByTelegramIDQuery must be created via NewGetAccountByTelegramIDQuery constructor",
	)
)

// GetAccountByTelegramIDQuery resolves a Telegram user to a registered
// account. This is the lookup behind request authentication: a verified
// initData payload yields a Telegram ID, and this query maps it to the
// account acting in the marketplace. It never creates accounts.
type GetAccountByTelegramIDQuery struct {
	tgID int64

	guard guard.ConstructorGuard
}

// NewGetAccountByTelegramIDQuery creates a lookup query for the given
// Telegram user ID.
func NewGetAccountByTelegramIDQuery(tgID int64) (GetAccountByTelegramIDQuery, error) {
	if tgID <= 0 {
		return GetAccountByTelegramIDQuery{}, errs.NewValueIsInvalidError("tgID")
	}

	return GetAccountByTelegramIDQuery{
		tgID:  tgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetAccountByTelegramIDQuery) TgID() int64 {
	return q.tgID
}

// Validate ensures the query was created through the constructor.
func (q GetAccountByTelegramIDQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountByTelegramIDQueryIsNotConstructed)
}

// GetAccountByTelegramIDQueryResponse is the resolved account profile.
type GetAccountByTelegramIDQueryResponse struct {
	ID              kernel.UUID
	TgID            int64
	Username        string
	Name            string
	Role            string
	ServiceCategory string
}
