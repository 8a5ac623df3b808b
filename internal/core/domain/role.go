package domain

import (
	"errors"
	"time"
)

// Well-known role codes. Codes are stored in canonical uppercase form; the
// authorization filter compares them exactly.
const (
	RoleAdmin   = "ADMIN"
	RoleCoach   = "COACH"
	RoleManager = "MANAGER"
	RoleMedical = "MEDICAL"
)

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleCodeTaken = errors.New("role code already taken")
)

// Role is a permission tier. Code is the authorization key; Name is the
// human-readable label shown in the UI.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
