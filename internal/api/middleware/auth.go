package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/api/metrics"
	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

// identityKey is the echo context key the gate stores the caller under.
const identityKey = "identity"

// UserResolver re-fetches the caller from the credential store. Narrow on
// purpose so tests can stub it without a full AuthService.
type UserResolver interface {
	CurrentUser(ctx context.Context, id int64) (*domain.User, error)
}

// Auth is the authentication gate. It verifies the bearer token, then
// re-resolves the user from the store so deactivation and role changes take
// effect on the next request instead of at token expiry. The freshly fetched
// record, not the token's claims, becomes the request identity.
func Auth(codec ports.TokenCodec, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.CurrentUser(c.Request().Context(), claims.UserID)
			if err != nil {
				if err == domain.ErrUserBlocked {
					metrics.AuthRejectionsTotal.WithLabelValues("blocked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found or blocked")
				}
				return err
			}

			ident := domain.Identity{
				ID:       user.ID,
				Email:    user.Email,
				FullName: user.FullName,
			}
			if user.Role != nil {
				ident.RoleCode = user.Role.Code
				ident.RoleName = user.Role.Name
			}
			c.Set(identityKey, ident)

			return next(c)
		}
	}
}

// CurrentIdentity extracts the identity the gate attached to the request.
func CurrentIdentity(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(identityKey).(domain.Identity)
	return ident, ok
}
