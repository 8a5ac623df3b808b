package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/api/metrics"
)

// RequireRoles is the authorization filter. The allowed set is fixed at route
// registration time. Comparison is exact and case-sensitive against the
// canonical uppercase codes established when the role was created.
func RequireRoles(allowedCodes ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedCodes))
	for _, code := range allowedCodes {
		allowed[code] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// No identity means the filter was applied without the gate.
			ident, ok := CurrentIdentity(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
			}

			if _, ok := allowed[ident.RoleCode]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":       "insufficient privileges",
					"description": "your role does not allow this action",
				})
			}

			return next(c)
		}
	}
}
