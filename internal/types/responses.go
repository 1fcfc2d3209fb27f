package types

import "time"

// Response is the generic error envelope written by api.ErrorResponse.
type Response struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type DeleteTripResponse struct {
	Success bool `json:"success"`
}

type PlanRequest struct {
	Prompt string `json:"prompt"`
	UserID string `json:"userID,omitempty"`
}

type PlanResponse struct {
	Prompt      string    `json:"prompt"`
	GeneratedAt time.Time `json:"generatedAt"`
	Trips       []Trip    `json:"trips"`
	Debug       PlanDebug `json:"debug"`
}

type GeneratedPlanResponse struct {
	Trips []Trip    `json:"trips"`
	Debug PlanDebug `json:"debug"`
}

type IncompletePromptResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Debug   PlanDebug `json:"debug"`
}

type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}
