package queries

import (
	"context"
	"database/sql"
	"errors"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountByTelegramIDQueryHandler resolves Telegram IDs to accounts.
// An unknown Telegram ID yields errs.ErrObjectNotFound, which the HTTP
// layer turns into an onboarding hint rather than a silent registration.
type GetAccountByTelegramIDQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountByTelegramIDQueryHandler creates a handler for account lookups.
func NewGetAccountByTelegramIDQueryHandler(db *gorm.DB) GetAccountByTelegramIDQueryHandler {
	return GetAccountByTelegramIDQueryHandler{db: db}
}

// Handle looks up the account registered for the Telegram user.
func (h GetAccountByTelegramIDQueryHandler) Handle(
	ctx context.Context,
	query GetAccountByTelegramIDQuery,
) (GetAccountByTelegramIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountByTelegramIDQueryResponse{}, err
	}

	var (
		id   uuid.UUID
		resp GetAccountByTelegramIDQueryResponse
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT id, tg_id, username, name, role, service_category
		FROM accounts
		WHERE tg_id = ?
	`, query.TgID()).Row().Scan(
		&id,
		&resp.TgID,
		&resp.Username,
		&resp.Name,
		&resp.Role,
		&resp.ServiceCategory,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAccountByTelegramIDQueryResponse{}, errs.NewObjectNotFoundError("account", query.TgID())
	}
	if err != nil {
		return GetAccountByTelegramIDQueryResponse{}, err
	}

	accountID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetAccountByTelegramIDQueryResponse{}, idErr
	}
	resp.ID = accountID

	return resp, nil
}
