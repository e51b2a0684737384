package middleware

import (
	"context"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "github.com/forestbar/api/internal/pkg/errors"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/pkg/requestcontext"
	"github.com/forestbar/api/internal/utils"
)

// ContextKeyIdentity is the echo context key holding the authenticated *models.Identity
const ContextKeyIdentity = "identity"

// Authenticator resolves a bearer credential into an active identity
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Identity, error)
}

// JWTAuthMiddleware checks the bearer credential through the authenticator and stores the
// identity under ContextKeyIdentity. Unknown or invalid credentials get 401, deactivated
// identities 403.
func JWTAuthMiddleware(authenticator Authenticator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKeyIdentity,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return authenticator.Authenticate(c.Request().Context(), auth)
		},
		SuccessHandler: func(c echo.Context) {
			identity, ok := IdentityFromContext(c)
			if !ok {
				return
			}
			ctx := requestcontext.WithIdentityID(c.Request().Context(), identity.ID.String())
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if !apperrors.IsKnown(err) {
				// missing header or malformed scheme
				err = apperrors.ErrInvalidCredential
			}
			return utils.DomainErrorResponse(c, err)
		},
	})
}

// IdentityFromContext returns the identity set by JWTAuthMiddleware
func IdentityFromContext(c echo.Context) (*models.Identity, bool) {
	identity, ok := c.Get(ContextKeyIdentity).(*models.Identity)
	return identity, ok && identity != nil
}
