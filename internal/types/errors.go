package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("requested item not found")
	ErrConfiguration       = errors.New("service is not configured")
	ErrUpstreamEmpty       = errors.New("AI response was empty")
	ErrUpstreamInvalidJSON = errors.New("AI returned invalid JSON")
	ErrPersistence         = errors.New("failed to persist trip")
)

// ValidationKind names why a trip request was rejected.
type ValidationKind string

const (
	MissingFields          ValidationKind = "MissingFields"
	InvalidDateFormat      ValidationKind = "InvalidDateFormat"
	InvalidBudget          ValidationKind = "InvalidBudget"
	MissingTravelSelection ValidationKind = "MissingTravelSelection"
	InvalidTravelCosts     ValidationKind = "InvalidTravelCosts"
)

var validationMessages = map[ValidationKind]string{
	MissingFields:          "Missing required fields",
	InvalidDateFormat:      "Invalid date format",
	InvalidBudget:          "Invalid budget value",
	MissingTravelSelection: "Missing travelSelection details",
	InvalidTravelCosts:     "Invalid travelSelection costs",
}

type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	if msg, ok := validationMessages[e.Kind]; ok {
		return msg
	}
	return string(e.Kind)
}

// UpstreamKind classifies a failed call to the text generation provider.
type UpstreamKind string

const (
	ModelNotFound    UpstreamKind = "ModelNotFound"
	QuotaExhausted   UpstreamKind = "QuotaExhausted"
	Timeout          UpstreamKind = "Timeout"
	GenerationFailed UpstreamKind = "GenerationFailed"
)

type UpstreamError struct {
	Kind    UpstreamKind
	Status  string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Transient reports whether the failure should be answered with a fallback plan.
func (e *UpstreamError) Transient() bool {
	switch e.Kind {
	case ModelNotFound, QuotaExhausted, Timeout:
		return true
	}
	return false
}

// Outcome maps the failure onto the interaction log vocabulary.
func (e *UpstreamError) Outcome() InteractionOutcome {
	switch e.Kind {
	case ModelNotFound:
		return OutcomeModelNotFound
	case QuotaExhausted:
		return OutcomeQuotaExhausted
	case Timeout:
		return OutcomeTimeout
	}
	return OutcomeFailed
}

// ConfigurationError names a setting that must be present for a call to proceed.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return e.Setting + " is not configured"
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
