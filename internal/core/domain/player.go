package domain

import (
	"errors"
	"time"
)

var ErrPlayerNotFound = errors.New("player not found")

// Player is a rostered athlete. CurrentTeamID is nullable: free agents exist.
type Player struct {
	ID             int64      `json:"id"`
	LastName       string     `json:"last_name"`
	FirstName      string     `json:"first_name"`
	MiddleName     string     `json:"middle_name,omitempty"`
	BirthDate      time.Time  `json:"birth_date"`
	Position       string     `json:"position,omitempty"`
	Height         int        `json:"height,omitempty"`
	Weight         int        `json:"weight,omitempty"`
	ContractExpiry *time.Time `json:"contract_expiry,omitempty"`
	CurrentTeamID  *int64     `json:"current_team_id,omitempty"`
	TeamName       string     `json:"team_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
