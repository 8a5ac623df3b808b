package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/core/ports"
)

type MatchHandler struct {
	matchService ports.MatchService
}

func NewMatchHandler(matchService ports.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// List handles GET /api/v1/matches.
//
// @Summary      List matches
// @Tags         matches
// @Produce      json
// @Success      200  {array}  domain.Match
// @Router       /api/v1/matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.matchService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, matches)
}

// Get handles GET /api/v1/matches/:id.
func (h *MatchHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	match, err := h.matchService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, match)
}

// Create handles POST /api/v1/matches. Home and away must be different teams
// and both must exist; scores stay null until the match is played.
//
// @Summary      Schedule a match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      matchRequest  true  "Match"
// @Success      201   {object}  domain.Match
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/matches [post]
func (h *MatchHandler) Create(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	match, err := h.matchService.Create(c.Request().Context(), matchInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, match)
}

// Update handles PUT /api/v1/matches/:id.
func (h *MatchHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	match, err := h.matchService.Update(c.Request().Context(), id, matchInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, match)
}

// Delete handles DELETE /api/v1/matches/:id. Nothing references matches, so
// deletion is unconditional.
//
// @Summary      Delete a match
// @Tags         matches
// @Security     BearerAuth
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/matches/{id} [delete]
func (h *MatchHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.matchService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func matchInput(req matchRequest) ports.MatchInput {
	return ports.MatchInput{
		Date:       req.Date,
		Time:       req.Time,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Type:       req.Type,
		Season:     req.Season,
		Status:     req.Status,
	}
}
