package domain

import (
	"errors"
	"time"
)

var ErrTrainingNotFound = errors.New("training not found")

// Training is a scheduled practice session for one team. StartTime and
// EndTime carry clock times in HH:MM form; EndTime may be empty for
// open-ended sessions. CoachID is nullable.
type Training struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"training_date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time,omitempty"`
	Location  string    `json:"location"`
	Type      string    `json:"training_type"`
	TeamID    int64     `json:"team_id"`
	CoachID   *int64    `json:"coach_id,omitempty"`
	TeamName  string    `json:"team_name,omitempty"`
	CoachName string    `json:"coach_name,omitempty"`
}
