package commands

import (
	"context"
	"errors"

	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
)

// RegisterAccountCommandHandler handles account onboarding. This is the
// only code path that creates accounts: request authentication resolves
// existing accounts and never falls through to creation.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account
// onboarding operations.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command. A new Telegram ID creates an
// account; a known one refreshes the mutable profile fields and, for
// workers, the service category. Role and Telegram ID never change.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	existing, err := accountRepo.GetByTgID(ctx, cmd.TgID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, newErr := account.NewAccount(
			kernel.NewUUID(), cmd.TgID(), cmd.Username(), cmd.Name(), cmd.Role(), cmd.ServiceCategory())
		if newErr != nil {
			return newErr
		}

		if addErr := accountRepo.Add(ctx, created); addErr != nil {
			return addErr
		}
	case err != nil:
		return err
	default:
		if updErr := existing.UpdateProfile(cmd.Username(), cmd.Name()); updErr != nil {
			return updErr
		}

		if existing.IsWorker() && cmd.ServiceCategory() != "" {
			if catErr := existing.ChangeServiceCategory(cmd.ServiceCategory()); catErr != nil {
				return catErr
			}
		}

		if updErr := accountRepo.Update(ctx, existing); updErr != nil {
			return updErr
		}
	}

	return uow.Commit(ctx)
}
