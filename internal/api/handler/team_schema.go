package handler

type teamRequest struct {
	Name   string `json:"name" validate:"required"`
	League string `json:"league"`
	Level  string `json:"level"`
	Season string `json:"season"`
}
