package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/api/metrics"
	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type TeamHandler struct {
	teamService ports.TeamService
}

func NewTeamHandler(teamService ports.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List handles GET /api/v1/teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Success      200  {array}  domain.Team
// @Router       /api/v1/teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.teamService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// Get handles GET /api/v1/teams/:id.
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	team, err := h.teamService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Create handles POST /api/v1/teams.
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamRequest  true  "Team"
// @Success      201   {object}  domain.Team
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teamService.Create(c.Request().Context(), teamInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, team)
}

// Update handles PUT /api/v1/teams/:id.
func (h *TeamHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teamService.Update(c.Request().Context(), id, teamInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /api/v1/teams/:id. Teams with rostered players,
// trainings, or scheduled matches are refused with a 400.
//
// @Summary      Delete a team
// @Tags         teams
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.teamService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrHasDependents) {
			metrics.DeletesBlockedTotal.WithLabelValues("team").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func teamInput(req teamRequest) ports.TeamInput {
	return ports.TeamInput{
		Name:   req.Name,
		League: req.League,
		Level:  req.Level,
		Season: req.Season,
	}
}
