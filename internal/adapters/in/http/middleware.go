package http

import (
	"errors"
	"net/http"
	"strings"

	"ustabar/internal/core/application/usecases/queries"
	"ustabar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// authScheme is the Authorization scheme carrying the raw Telegram WebApp
// initData payload, per the Mini Apps convention.
const authScheme = "tma"

// accountContextKey is where the authenticate middleware stores the resolved
// account for downstream handlers.
const accountContextKey = "account"

// authenticate verifies the signed initData payload on every request and
// resolves the embedded Telegram identity to a registered account. Resolution
// never creates accounts: an unknown identity gets 404 with an onboarding
// hint, keeping registration on the single bot-driven path.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		scheme, rawInitData, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, authScheme) {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Authorization header with tma scheme is required",
			})
		}

		identity, err := s.verifier.Verify(rawInitData)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Init data verification failed",
			})
		}

		query, err := queries.NewGetAccountByTelegramIDQuery(identity.ID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Init data verification failed",
			})
		}

		account, err := s.accountByTelegramIDHandler.Handle(ctx.Request().Context(), query)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Account is not registered; complete onboarding via the bot first",
			})
		}
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Internal error",
			})
		}

		ctx.Set(accountContextKey, account)
		return next(ctx)
	}
}

// currentAccount returns the account stored by the authenticate middleware.
func currentAccount(ctx echo.Context) queries.GetAccountByTelegramIDQueryResponse {
	account, _ := ctx.Get(accountContextKey).(queries.GetAccountByTelegramIDQueryResponse)
	return account
}
