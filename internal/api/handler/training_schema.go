package handler

type trainingRequest struct {
	Date      string `json:"date"       validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"   validate:"required"`
	Type      string `json:"type"       validate:"required"`
	TeamID    int64  `json:"team_id"    validate:"required"`
	CoachID   *int64 `json:"coach_id"`
}
