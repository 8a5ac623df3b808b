package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "...", "description": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, desc := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg, Description: desc})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password", ""
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid or expired token", ""
	case errors.Is(err, domain.ErrUserBlocked):
		return http.StatusUnauthorized, "user not found or blocked", ""
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "insufficient privileges", "your role does not allow this action"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many login attempts", "wait for the attempt window to pass"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation failed", err.Error()
	case errors.Is(err, domain.ErrHasDependents):
		return http.StatusBadRequest, "delete blocked by dependent records", err.Error()
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, "invalid reference", err.Error()
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "email already taken", ""
	case errors.Is(err, domain.ErrRoleCodeTaken):
		return http.StatusConflict, "role code already taken", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusNotFound, "role not found", ""
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, "team not found", ""
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, "player not found", ""
	case errors.Is(err, domain.ErrTrainingNotFound):
		return http.StatusNotFound, "training not found", ""
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound, "match not found", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", ""
}
