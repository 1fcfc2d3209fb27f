package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const PromptRequiredMsg = "Prompt is required."

var (
	ErrEmptyPrompt = errors.New("prompt is required")

	_ Service = (*ServiceImpl)(nil)
)

// IncompletePromptError is returned when a prompt lacks the fields needed to
// generate a trip. Debug explains what was recovered.
type IncompletePromptError struct {
	Debug types.PlanDebug
}

func (e *IncompletePromptError) Error() string { return IncompletePromptMsg }

// Service answers free-text trip prompts.
type Service interface {
	// Plan extracts an intent and returns stored trips matching it.
	Plan(ctx context.Context, prompt string) (types.PlanResponse, error)
	// GeneratePlan extracts an intent, derives a full request and runs generation.
	GeneratePlan(ctx context.Context, prompt, userID string) (types.GeneratedPlanResponse, error)
}

type ServiceImpl struct {
	logger           *slog.Logger
	extractor        *Extractor
	tripsService     trips.Service
	itineraryService itinerary.Service
	now              func() time.Time
}

func NewPromptService(extractor *Extractor, tripsService trips.Service, itineraryService itinerary.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:           logger,
		extractor:        extractor,
		tripsService:     tripsService,
		itineraryService: itineraryService,
		now:              time.Now,
	}
}

func (s *ServiceImpl) Plan(ctx context.Context, prompt string) (types.PlanResponse, error) {
	ctx, span := otel.Tracer("PromptService").Start(ctx, "Plan")
	defer span.End()

	if strings.TrimSpace(prompt) == "" {
		span.SetStatus(codes.Error, "Empty prompt")
		return types.PlanResponse{}, ErrEmptyPrompt
	}

	intent, missing := s.extractor.Extract(prompt)
	span.SetAttributes(attribute.StringSlice("prompt.missing", missing))

	matched, err := s.tripsService.TripsForPrompt(ctx, prompt, intent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Trip lookup failed")
		return types.PlanResponse{}, fmt.Errorf("failed to match trips: %w", err)
	}

	span.SetStatus(codes.Ok, "Plan built")
	return types.PlanResponse{
		Prompt:      prompt,
		GeneratedAt: s.now().UTC(),
		Trips:       matched,
		Debug:       types.PlanDebug{Extracted: intent, Missing: missing},
	}, nil
}

func (s *ServiceImpl) GeneratePlan(ctx context.Context, prompt, userID string) (types.GeneratedPlanResponse, error) {
	ctx, span := otel.Tracer("PromptService").Start(ctx, "GeneratePlan", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GeneratePlan"))

	if strings.TrimSpace(prompt) == "" {
		span.SetStatus(codes.Error, "Empty prompt")
		return types.GeneratedPlanResponse{}, ErrEmptyPrompt
	}

	intent, missing := s.extractor.Extract(prompt)
	debug := types.PlanDebug{Extracted: intent, Missing: missing}
	dates := BuildTripDates(intent.TravelDate, intent.DurationDays, s.now())
	if !Complete(intent, dates) {
		l.InfoContext(ctx, "Prompt is missing trip details", slog.Any("missing", missing))
		span.SetStatus(codes.Error, "Incomplete prompt")
		return types.GeneratedPlanResponse{}, &IncompletePromptError{Debug: debug}
	}

	req := DeriveGenerateRequest(intent, *dates, userID)
	generated, err := s.itineraryService.GenerateTrips(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		return types.GeneratedPlanResponse{}, err
	}

	span.SetStatus(codes.Ok, "Plan generated")
	return types.GeneratedPlanResponse{Trips: generated, Debug: debug}, nil
}
