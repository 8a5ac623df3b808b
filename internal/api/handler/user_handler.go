package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/core/ports"
)

// UserHandler exposes the user directory. All routes sit behind the gate;
// Update additionally requires ADMIN. Password hashes never serialize — the
// domain type hides them from JSON.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/v1/users/:id — profile, role, and active-flag
// changes. There is no delete route; accounts are deactivated, never removed.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.Update(c.Request().Context(), id, ports.UpdateUserInput{
		FullName: req.FullName,
		RoleID:   req.RoleID,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
