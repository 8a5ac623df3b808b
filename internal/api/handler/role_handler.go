package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/api/metrics"
	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

// RoleHandler exposes role CRUD. Reads are public; writes sit behind the gate
// plus the ADMIN filter (wired in the router).
type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List handles GET /api/v1/roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Get handles GET /api/v1/roles/:id.
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	role, err := h.roleService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Create handles POST /api/v1/roles. The code is canonicalized to uppercase
// by the service before it is stored.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Create(c.Request().Context(), ports.RoleInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// Update handles PUT /api/v1/roles/:id.
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Update(c.Request().Context(), id, ports.RoleInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Delete handles DELETE /api/v1/roles/:id. A role still assigned to users is
// refused with a 400 and the row is left intact.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.roleService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrHasDependents) {
			metrics.DeletesBlockedTotal.WithLabelValues("role").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
