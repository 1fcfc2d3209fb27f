package trips

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service reads and removes stored trips through the selected DataSource.
type Service interface {
	ListTrips(ctx context.Context, userID string) ([]types.Trip, error)
	GetTrip(ctx context.Context, id string) (*types.Trip, error)
	DeleteTrip(ctx context.Context, id string) (bool, error)
	TripsForPrompt(ctx context.Context, prompt string, intent types.TripIntent) ([]types.Trip, error)
}

// SourcePicker chooses a DataSource for the current request.
type SourcePicker interface {
	Select(ctx context.Context) DataSource
}

type ServiceImpl struct {
	logger  *slog.Logger
	sources SourcePicker
}

func NewTripsService(sources SourcePicker, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		sources: sources,
	}
}

func (s *ServiceImpl) ListTrips(ctx context.Context, userID string) ([]types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "ListTrips", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	source := s.sources.Select(ctx)
	l := s.logger.With(slog.String("method", "ListTrips"), slog.String("source", source.Name()))

	trips, err := source.ListTrips(ctx, userID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list trips", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "List failed")
		return nil, fmt.Errorf("list trips from %s: %w", source.Name(), err)
	}

	l.DebugContext(ctx, "Trips listed", slog.Int("count", len(trips)))
	span.SetAttributes(attribute.String("data.source", source.Name()), attribute.Int("trips.count", len(trips)))
	span.SetStatus(codes.Ok, "Trips listed")
	return trips, nil
}

func (s *ServiceImpl) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "GetTrip", trace.WithAttributes(
		attribute.String("trip.id", id),
	))
	defer span.End()

	source := s.sources.Select(ctx)
	trip, err := source.GetTrip(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Get failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Trip found")
	return trip, nil
}

func (s *ServiceImpl) DeleteTrip(ctx context.Context, id string) (bool, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "DeleteTrip", trace.WithAttributes(
		attribute.String("trip.id", id),
	))
	defer span.End()

	source := s.sources.Select(ctx)
	l := s.logger.With(slog.String("method", "DeleteTrip"), slog.String("source", source.Name()))

	deleted, err := source.DeleteTrip(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete trip", slog.String("trip_id", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Delete failed")
		return false, err
	}
	l.InfoContext(ctx, "Delete trip", slog.String("trip_id", id), slog.Bool("deleted", deleted))
	span.SetStatus(codes.Ok, "Delete done")
	return deleted, nil
}

func (s *ServiceImpl) TripsForPrompt(ctx context.Context, prompt string, intent types.TripIntent) ([]types.Trip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "TripsForPrompt")
	defer span.End()

	source := s.sources.Select(ctx)
	trips, err := source.TripsForPrompt(ctx, prompt, intent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Match failed")
		return nil, fmt.Errorf("match trips from %s: %w", source.Name(), err)
	}
	span.SetAttributes(attribute.String("data.source", source.Name()), attribute.Int("trips.count", len(trips)))
	span.SetStatus(codes.Ok, "Trips matched")
	return trips, nil
}
