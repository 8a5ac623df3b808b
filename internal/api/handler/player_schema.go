package handler

type playerRequest struct {
	LastName       string `json:"last_name"  validate:"required"`
	FirstName      string `json:"first_name" validate:"required"`
	MiddleName     string `json:"middle_name"`
	BirthDate      string `json:"birth_date" validate:"required"`
	Position       string `json:"position"   validate:"required"`
	Height         int    `json:"height"     validate:"omitempty,gte=0"`
	Weight         int    `json:"weight"     validate:"omitempty,gte=0"`
	ContractExpiry string `json:"contract_expiry"`
	CurrentTeamID  *int64 `json:"current_team_id"`
}
