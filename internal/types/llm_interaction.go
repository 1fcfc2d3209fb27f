package types

import (
	"time"

	"github.com/google/uuid"
)

// InteractionOutcome classifies how an upstream generation attempt ended.
type InteractionOutcome string

const (
	OutcomeOK             InteractionOutcome = "ok"
	OutcomeEmpty          InteractionOutcome = "empty"
	OutcomeInvalidJSON    InteractionOutcome = "invalid_json"
	OutcomeModelNotFound  InteractionOutcome = "model_not_found"
	OutcomeQuotaExhausted InteractionOutcome = "quota_exhausted"
	OutcomeTimeout        InteractionOutcome = "timeout"
	OutcomeFailed         InteractionOutcome = "failed"
)

type LLMInteraction struct {
	ID        uuid.UUID          `json:"id"`
	UserID    string             `json:"user_id"`
	Prompt    string             `json:"prompt"`
	Response  string             `json:"response"`
	Model     string             `json:"model"`
	Provider  string             `json:"provider"`
	LatencyMs int                `json:"latency_ms"`
	Outcome   InteractionOutcome `json:"outcome"`
	CreatedAt time.Time          `json:"created_at"`
}

// ModelInfo describes one model offered by the configured provider.
type ModelInfo struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}
