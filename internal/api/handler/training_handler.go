package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/api/metrics"
	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type TrainingHandler struct {
	trainingService ports.TrainingService
}

func NewTrainingHandler(trainingService ports.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// List handles GET /api/v1/trainings.
//
// @Summary      List trainings
// @Tags         trainings
// @Produce      json
// @Success      200  {array}  domain.Training
// @Router       /api/v1/trainings [get]
func (h *TrainingHandler) List(c echo.Context) error {
	trainings, err := h.trainingService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainings)
}

// Get handles GET /api/v1/trainings/:id.
func (h *TrainingHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	training, err := h.trainingService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, training)
}

// Create handles POST /api/v1/trainings. team_id must reference an existing
// team; coach_id is optional and, when set, must reference a user.
//
// @Summary      Schedule a training
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      trainingRequest  true  "Training"
// @Success      201   {object}  domain.Training
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/trainings [post]
func (h *TrainingHandler) Create(c echo.Context) error {
	var req trainingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	training, err := h.trainingService.Create(c.Request().Context(), trainingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, training)
}

// Update handles PUT /api/v1/trainings/:id.
func (h *TrainingHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req trainingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	training, err := h.trainingService.Update(c.Request().Context(), id, trainingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, training)
}

// Delete handles DELETE /api/v1/trainings/:id. Trainings with recorded
// attendance stats are refused with a 400.
//
// @Summary      Delete a training
// @Tags         trainings
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/trainings/{id} [delete]
func (h *TrainingHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.trainingService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrHasDependents) {
			metrics.DeletesBlockedTotal.WithLabelValues("training").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func trainingInput(req trainingRequest) ports.TrainingInput {
	return ports.TrainingInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Type:      req.Type,
		TeamID:    req.TeamID,
		CoachID:   req.CoachID,
	}
}
