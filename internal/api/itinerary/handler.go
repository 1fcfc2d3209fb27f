package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/internal/api"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const (
	generationFailedMsg = "Trip generation failed"
	saveFailedMsg       = "Failed to save trip"
)

type ItineraryHandler struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewItineraryHandler(itineraryService Service, logger *slog.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateTrips godoc
// @Summary      Generate trips
// @Description  Asks the configured model for itineraries, or builds the fallback plan when it is unavailable, and stores the result.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateTripRequest true "Trip request"
// @Success      201 {array}  types.Trip
// @Failure      400 {object} types.Response "Invalid request"
// @Failure      429 {object} types.Response "Too many requests"
// @Failure      500 {object} types.Response "Generation or persistence failed"
// @Failure      502 {object} types.Response "Upstream returned unusable content"
// @Router       /trips/generate [post]
func (h *ItineraryHandler) GenerateTrips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateTrips", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/trips/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateTrips"))

	var req types.GenerateTripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	trips, err := h.itineraryService.GenerateTrips(ctx, req)
	if err != nil {
		status, msg := StatusForError(err)
		l.ErrorContext(ctx, "Trip generation request failed", slog.Int("status", status), slog.Any("error", err))
		api.ErrorResponse(w, r, status, msg)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, trips)
}

// StatusForError maps a GenerateTrips error onto a status code and a short
// client-facing message.
func StatusForError(err error) (int, string) {
	var validationErr *types.ValidationError
	var cfgErr *types.ConfigurationError
	var upstream *types.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, cfgErr.Error()
	case errors.Is(err, types.ErrUpstreamEmpty):
		return http.StatusBadGateway, types.ErrUpstreamEmpty.Error()
	case errors.Is(err, types.ErrUpstreamInvalidJSON):
		return http.StatusBadGateway, types.ErrUpstreamInvalidJSON.Error()
	case errors.As(err, &upstream):
		return http.StatusInternalServerError, generationFailedMsg
	default:
		return http.StatusInternalServerError, saveFailedMsg
	}
}
