package handler

type matchRequest struct {
	Date       string `json:"date"         validate:"required"`
	Time       string `json:"time"`
	HomeTeamID int64  `json:"home_team_id" validate:"required"`
	AwayTeamID int64  `json:"away_team_id" validate:"required"`
	HomeScore  *int   `json:"home_score"   validate:"omitempty,gte=0"`
	AwayScore  *int   `json:"away_score"   validate:"omitempty,gte=0"`
	Type       string `json:"type"`
	Season     string `json:"season"`
	Status     string `json:"status"`
}
