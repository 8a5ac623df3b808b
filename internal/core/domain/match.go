package domain

import (
	"errors"
	"time"
)

// MatchStatus is the lifecycle state of a match.
const (
	MatchScheduled = "scheduled"
	MatchFinished  = "finished"
	MatchCancelled = "cancelled"
)

var ErrMatchNotFound = errors.New("match not found")

// Match is a fixture between two teams. Scores are nil until the match has
// been played.
type Match struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"match_date"`
	Time       string    `json:"match_time,omitempty"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	HomeScore  *int      `json:"home_score,omitempty"`
	AwayScore  *int      `json:"away_score,omitempty"`
	Type       string    `json:"match_type,omitempty"`
	Season     string    `json:"season,omitempty"`
	Status     string    `json:"status"`
}
