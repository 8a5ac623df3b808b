package domain

import (
	"errors"
	"time"
)

var ErrTeamNotFound = errors.New("team not found")

// Team is a roster unit players and trainings attach to.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	League    string    `json:"league,omitempty"`
	Level     string    `json:"level,omitempty"`
	Season    string    `json:"season,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
