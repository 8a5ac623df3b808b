package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/api/metrics"
	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type PlayerHandler struct {
	playerService ports.PlayerService
}

func NewPlayerHandler(playerService ports.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// List handles GET /api/v1/players.
//
// @Summary      List players
// @Tags         players
// @Produce      json
// @Success      200  {array}  domain.Player
// @Router       /api/v1/players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.playerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

// Get handles GET /api/v1/players/:id.
func (h *PlayerHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	player, err := h.playerService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

// Create handles POST /api/v1/players. current_team_id may be null for free
// agents; when set it must reference an existing team.
//
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      playerRequest  true  "Player"
// @Success      201   {object}  domain.Player
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.playerService.Create(c.Request().Context(), playerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, player)
}

// Update handles PUT /api/v1/players/:id.
func (h *PlayerHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.playerService.Update(c.Request().Context(), id, playerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /api/v1/players/:id. Players with recorded training
// stats are refused with a 400.
//
// @Summary      Delete a player
// @Tags         players
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/players/{id} [delete]
func (h *PlayerHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.playerService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrHasDependents) {
			metrics.DeletesBlockedTotal.WithLabelValues("player").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func playerInput(req playerRequest) ports.PlayerInput {
	return ports.PlayerInput{
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		BirthDate:      req.BirthDate,
		Position:       req.Position,
		Height:         req.Height,
		Weight:         req.Weight,
		ContractExpiry: req.ContractExpiry,
		CurrentTeamID:  req.CurrentTeamID,
	}
}
