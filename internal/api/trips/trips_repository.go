package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/ecowise-api/app/db"
	"github.com/FACorreiaa/ecowise-api/app/observability/metrics"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

var _ Repository = (*PostgresTripsRepo)(nil)

// Repository persists finished trips.
type Repository interface {
	// InsertMany stores all trips in one transaction and returns them with
	// their generated ids and creation times.
	InsertMany(ctx context.Context, trips []types.Trip) ([]types.Trip, error)
	// List returns trips newest first, optionally restricted to one user.
	List(ctx context.Context, userID string) ([]types.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Trip, error)
	// Delete reports whether a trip with the id existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Ping(ctx context.Context) error
}

type PostgresTripsRepo struct {
	logger *slog.Logger
	pgpool database.Pool
}

func NewPostgresTripsRepo(pgpool database.Pool, logger *slog.Logger) *PostgresTripsRepo {
	return &PostgresTripsRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const tripColumns = `id, user_id, origin, destination, start_date, deadline, budget,
        plan_name, plan_rationale, itinerary, plan, total_cost_accommodation_activities,
        total_cost, budget_remaining, travel_selection, side_locations, warnings,
        emissions, source, created_at`

const insertTripQuery = `
        INSERT INTO trips (
            user_id, origin, destination, start_date, deadline, budget,
            plan_name, plan_rationale, itinerary, plan, total_cost_accommodation_activities,
            total_cost, budget_remaining, travel_selection, side_locations, warnings,
            emissions, source
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        RETURNING id, created_at`

func (r *PostgresTripsRepo) InsertMany(ctx context.Context, trips []types.Trip) (saved []types.Trip, err error) {
	ctx, span := otel.Tracer("TripsRepo").Start(ctx, "InsertMany", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.Int("trips.count", len(trips)),
	))
	defer span.End()
	start := time.Now()
	defer func() { metrics.ObserveQuery(ctx, "insert_trips", start, err) }()

	l := r.logger.With(slog.String("method", "InsertMany"))

	tx, err := r.pgpool.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Begin failed")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				l.WarnContext(ctx, "Rollback failed", slog.Any("error", rbErr))
			}
		}
	}()

	saved = make([]types.Trip, 0, len(trips))
	for _, trip := range trips {
		args, err := insertArgs(trip)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Encode failed")
			return nil, err
		}
		var id uuid.UUID
		var createdAt time.Time
		if err = tx.QueryRow(ctx, insertTripQuery, args...).Scan(&id, &createdAt); err != nil {
			l.ErrorContext(ctx, "Failed to insert trip", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Insert failed")
			return nil, fmt.Errorf("failed to insert trip: %w", err)
		}
		trip.ID = id.String()
		trip.CreatedAt = createdAt
		saved = append(saved, trip)
	}

	if err = tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Commit failed")
		return nil, fmt.Errorf("failed to commit trips: %w", err)
	}

	metrics.Get().TripsStoredTotal.Add(ctx, int64(len(saved)))
	l.InfoContext(ctx, "Trips stored", slog.Int("count", len(saved)))
	span.SetStatus(codes.Ok, "Trips stored")
	return saved, nil
}

func (r *PostgresTripsRepo) List(ctx context.Context, userID string) (trips []types.Trip, err error) {
	ctx, span := otel.Tracer("TripsRepo").Start(ctx, "List", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.Bool("filter.user", userID != ""),
	))
	defer span.End()
	start := time.Now()
	defer func() { metrics.ObserveQuery(ctx, "list_trips", start, err) }()

	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`
	args := []any{}
	if userID != "" {
		query = `SELECT ` + tripColumns + ` FROM trips WHERE user_id = $1 ORDER BY created_at DESC`
		args = append(args, userID)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Query failed")
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips = []types.Trip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Scan failed")
			return nil, err
		}
		trips = append(trips, *trip)
	}
	if err = rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Rows failed")
		return nil, fmt.Errorf("failed iterating trips: %w", err)
	}

	span.SetAttributes(attribute.Int("trips.count", len(trips)))
	span.SetStatus(codes.Ok, "Trips listed")
	return trips, nil
}

func (r *PostgresTripsRepo) GetByID(ctx context.Context, id uuid.UUID) (trip *types.Trip, err error) {
	ctx, span := otel.Tracer("TripsRepo").Start(ctx, "GetByID", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("trip.id", id.String()),
	))
	defer span.End()
	start := time.Now()
	defer func() { metrics.ObserveQuery(ctx, "get_trip", start, err) }()

	row := r.pgpool.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)
	trip, err = scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Ok, "Trip not found")
			return nil, fmt.Errorf("trip %s not found: %w", id, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Query failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Trip found")
	return trip, nil
}

func (r *PostgresTripsRepo) Delete(ctx context.Context, id uuid.UUID) (deleted bool, err error) {
	ctx, span := otel.Tracer("TripsRepo").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("trip.id", id.String()),
	))
	defer span.End()
	start := time.Now()
	defer func() { metrics.ObserveQuery(ctx, "delete_trip", start, err) }()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Delete failed")
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	span.SetStatus(codes.Ok, "Delete executed")
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresTripsRepo) Ping(ctx context.Context) error {
	return r.pgpool.Ping(ctx)
}

func insertArgs(trip types.Trip) ([]any, error) {
	jsonCols := []any{trip.Itinerary, trip.Plan, trip.TravelSelection, trip.SideLocations, trip.Warnings, trip.Emissions}
	encoded := make([][]byte, len(jsonCols))
	for i, v := range jsonCols {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode trip column: %w", err)
		}
		encoded[i] = b
	}
	source := trip.Source
	if source == "" {
		source = types.TripSourceLLM
	}
	return []any{
		trip.UserID, trip.From, trip.To, trip.StartDate, trip.Deadline, trip.Budget,
		trip.PlanName, trip.PlanRationale, encoded[0], encoded[1], trip.TotalCostAccommodationActivities,
		trip.TotalCost, trip.BudgetRemaining, encoded[2], encoded[3], encoded[4],
		encoded[5], string(source),
	}, nil
}

func scanTrip(row pgx.Row) (*types.Trip, error) {
	var (
		trip                                                          types.Trip
		id                                                            uuid.UUID
		source                                                        string
		itinerary, plan, selection, sideLocations, warnings, emission []byte
	)
	err := row.Scan(
		&id, &trip.UserID, &trip.From, &trip.To, &trip.StartDate, &trip.Deadline, &trip.Budget,
		&trip.PlanName, &trip.PlanRationale, &itinerary, &plan, &trip.TotalCostAccommodationActivities,
		&trip.TotalCost, &trip.BudgetRemaining, &selection, &sideLocations, &warnings,
		&emission, &source, &trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan trip: %w", err)
	}
	trip.ID = id.String()
	trip.Source = types.TripSource(source)

	for _, col := range []struct {
		raw []byte
		dst any
	}{
		{itinerary, &trip.Itinerary},
		{plan, &trip.Plan},
		{selection, &trip.TravelSelection},
		{sideLocations, &trip.SideLocations},
		{warnings, &trip.Warnings},
		{emission, &trip.Emissions},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("failed to decode trip %s: %w", trip.ID, err)
		}
	}
	return &trip, nil
}
