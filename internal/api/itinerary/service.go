package itinerary

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
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/ecowise-api/internal/api/generative_ai"
	llmInteraction "github.com/FACorreiaa/ecowise-api/internal/api/llm_interaction"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const DefaultGenerationTimeout = 45 * time.Second

var _ Service = (*ServiceImpl)(nil)

// Service validates a trip request, produces itineraries for it and stores them.
type Service interface {
	GenerateTrips(ctx context.Context, req types.GenerateTripRequest) ([]types.Trip, error)
}

type ServiceImpl struct {
	logger          *slog.Logger
	generator       generativeAI.TextGenerator
	tripRepo        trips.Repository
	interactionRepo llmInteraction.Repository
	timeout         time.Duration
	now             func() time.Time
}

func NewItineraryService(
	generator generativeAI.TextGenerator,
	tripRepo trips.Repository,
	interactionRepo llmInteraction.Repository,
	timeout time.Duration,
	logger *slog.Logger,
) *ServiceImpl {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &ServiceImpl{
		logger:          logger,
		generator:       generator,
		tripRepo:        tripRepo,
		interactionRepo: interactionRepo,
		timeout:         timeout,
		now:             time.Now,
	}
}

// GenerateTrips runs validation, generation (or the fallback template when the
// provider is transiently unavailable) and persistence. Returned errors are
// *types.ValidationError, *types.ConfigurationError, *types.UpstreamError,
// or wrap ErrUpstreamEmpty, ErrUpstreamInvalidJSON or ErrPersistence.
func (s *ServiceImpl) GenerateTrips(ctx context.Context, raw types.GenerateTripRequest) ([]types.Trip, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateTrips", trace.WithAttributes(
		attribute.String("llm.provider", s.generator.Provider()),
		attribute.String("llm.model", s.generator.Model()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateTrips"))

	req, err := ValidateTripRequest(raw)
	if err != nil {
		l.InfoContext(ctx, "Rejected trip request", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request")
		return nil, err
	}
	l = l.With(slog.String("user_id", req.UserID), slog.String("from", req.From), slog.String("to", req.To))
	span.SetAttributes(attribute.String("trip.from", req.From), attribute.String("trip.to", req.To))

	prompt := getTripGenerationPrompt(req, s.now())

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	start := time.Now()
	text, err := s.generator.GenerateJSON(genCtx, prompt)
	cancel()
	latency := time.Since(start)
	metrics.Get().GenerationDurationSeconds.Record(ctx, latency.Seconds(),
		metric.WithAttributes(attribute.String("llm.provider", s.generator.Provider())))

	if err != nil {
		var cfgErr *types.ConfigurationError
		if errors.As(err, &cfgErr) {
			l.ErrorContext(ctx, "Text generator is not configured", slog.String("setting", cfgErr.Setting))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Not configured")
			s.countRequest(ctx, "not_configured")
			return nil, cfgErr
		}

		classified := generativeAI.ClassifyError(err)
		var upstream *types.UpstreamError
		if !errors.As(classified, &upstream) {
			upstream = &types.UpstreamError{Kind: types.GenerationFailed, Message: err.Error(), Err: err}
		}
		s.recordInteraction(ctx, req.UserID, prompt, "", latency, upstream.Outcome())
		s.countRequest(ctx, string(upstream.Outcome()))
		span.RecordError(upstream)

		if !upstream.Transient() {
			l.ErrorContext(ctx, "Trip generation failed", slog.Any("error", upstream))
			span.SetStatus(codes.Error, "Generation failed")
			return nil, upstream
		}

		l.WarnContext(ctx, "Upstream unavailable, using fallback plan", slog.String("kind", string(upstream.Kind)))
		metrics.Get().FallbackPlansTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(upstream.Kind))))
		saved, err := s.tripRepo.InsertMany(ctx, []types.Trip{buildFallbackTrip(req)})
		if err != nil {
			l.ErrorContext(ctx, "Failed to store fallback trip", slog.Any("error", err))
			span.SetStatus(codes.Error, "Fallback persistence failed")
			return nil, errors.Join(upstream, fmt.Errorf("%w: %v", types.ErrPersistence, err))
		}
		span.SetAttributes(attribute.Bool("trip.fallback", true))
		span.SetStatus(codes.Ok, "Fallback trip stored")
		return saved, nil
	}

	if strings.TrimSpace(text) == "" {
		s.recordInteraction(ctx, req.UserID, prompt, text, latency, types.OutcomeEmpty)
		s.countRequest(ctx, string(types.OutcomeEmpty))
		l.WarnContext(ctx, "Upstream returned no text")
		span.SetStatus(codes.Error, "Empty response")
		return nil, types.ErrUpstreamEmpty
	}

	plans, err := parsePlans(text)
	if err != nil {
		s.recordInteraction(ctx, req.UserID, prompt, text, latency, types.OutcomeInvalidJSON)
		s.countRequest(ctx, string(types.OutcomeInvalidJSON))
		l.WarnContext(ctx, "Upstream returned unparsable JSON", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid JSON")
		return nil, err
	}
	s.recordInteraction(ctx, req.UserID, prompt, text, latency, types.OutcomeOK)
	s.countRequest(ctx, string(types.OutcomeOK))

	built := make([]types.Trip, 0, len(plans))
	for _, plan := range plans {
		built = append(built, buildTrip(req, plan, types.TripSourceLLM))
	}

	saved, err := s.tripRepo.InsertMany(ctx, built)
	if err != nil {
		l.ErrorContext(ctx, "Failed to store generated trips", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Persistence failed")
		return nil, fmt.Errorf("%w: %v", types.ErrPersistence, err)
	}

	l.InfoContext(ctx, "Trips generated", slog.Int("count", len(saved)), slog.Duration("latency", latency))
	span.SetAttributes(attribute.Int("trips.count", len(saved)))
	span.SetStatus(codes.Ok, "Trips stored")
	return saved, nil
}

func (s *ServiceImpl) countRequest(ctx context.Context, outcome string) {
	metrics.Get().GenerationRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// recordInteraction logs the attempt. Failing to record it never fails the request.
func (s *ServiceImpl) recordInteraction(ctx context.Context, userID, prompt, response string, latency time.Duration, outcome types.InteractionOutcome) {
	if s.interactionRepo == nil {
		return
	}
	err := s.interactionRepo.SaveInteraction(ctx, types.LLMInteraction{
		UserID:    userID,
		Prompt:    prompt,
		Response:  response,
		Model:     s.generator.Model(),
		Provider:  s.generator.Provider(),
		LatencyMs: int(latency.Milliseconds()),
		Outcome:   outcome,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to record llm interaction", slog.Any("error", err))
	}
}
