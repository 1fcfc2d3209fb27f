package trips

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/internal/api"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

type TripsHandler struct {
	tripsService Service
	logger       *slog.Logger
}

func NewTripsHandler(tripsService Service, logger *slog.Logger) *TripsHandler {
	return &TripsHandler{
		tripsService: tripsService,
		logger:       logger,
	}
}

// ListTrips godoc
// @Summary      List trips
// @Description  Returns stored trips newest first, optionally for one user.
// @Tags         Trips
// @Produce      json
// @Param        userID query string false "Only trips created for this user"
// @Success      200 {array}  types.Trip
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "ListTrips", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/trips"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListTrips"))
	userID := r.URL.Query().Get("userID")

	trips, err := h.tripsService.ListTrips(ctx, userID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch trips", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch trips")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, trips)
}

// GetTrip godoc
// @Summary      Get trip
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} types.Trip
// @Failure      404 {object} types.Response "Trip not found"
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /trips/{id} [get]
func (h *TripsHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "GetTrip", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/trips/{id}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetTrip"))
	id := chi.URLParam(r, "id")

	trip, err := h.tripsService.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Trip not found")
			return
		}
		l.ErrorContext(ctx, "Failed to fetch trip", slog.String("trip_id", id), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, trip)
}

// DeleteTrip godoc
// @Summary      Delete trip
// @Description  Removes a stored trip. success is false when no trip had the id.
// @Tags         Trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} types.DeleteTripResponse
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /trips/{id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "DeleteTrip", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/trips/{id}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "DeleteTrip"))
	id := chi.URLParam(r, "id")

	deleted, err := h.tripsService.DeleteTrip(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete trip", slog.String("trip_id", id), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete trip")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.DeleteTripResponse{Success: deleted})
}
