package prompt

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/internal/api"
	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

type PromptHandler struct {
	promptService Service
	logger        *slog.Logger
}

func NewPromptHandler(promptService Service, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		logger:        logger,
	}
}

// Plan godoc
// @Summary      Match trips to a prompt
// @Description  Extracts origin, destination, dates, budget and preferences from free text and returns stored trips that fit.
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        request body types.PlanRequest true "Prompt"
// @Success      200 {object} types.PlanResponse
// @Failure      400 {object} types.Response "Prompt is required."
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /plan [post]
func (h *PromptHandler) Plan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PromptHandler").Start(r.Context(), "Plan", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Plan"))

	var req types.PlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, PromptRequiredMsg)
		return
	}

	resp, err := h.promptService.Plan(ctx, req.Prompt)
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			api.ErrorResponse(w, r, http.StatusBadRequest, PromptRequiredMsg)
			return
		}
		l.ErrorContext(ctx, "Failed to build plan", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to build plan")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GeneratePlan godoc
// @Summary      Generate trips from a prompt
// @Description  Extracts the trip from free text, derives transport allowances from the budget and generates stored itineraries.
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        request body types.PlanRequest true "Prompt"
// @Success      201 {object} types.GeneratedPlanResponse
// @Failure      400 {object} types.Response "Prompt is required."
// @Failure      422 {object} types.IncompletePromptResponse "Prompt is missing trip details"
// @Failure      429 {object} types.Response "Too many requests"
// @Failure      500 {object} types.Response "Generation or persistence failed"
// @Failure      502 {object} types.Response "Upstream returned unusable content"
// @Router       /plan/generate [post]
func (h *PromptHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PromptHandler").Start(r.Context(), "GeneratePlan", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/plan/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GeneratePlan"))

	var req types.PlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, PromptRequiredMsg)
		return
	}

	resp, err := h.promptService.GeneratePlan(ctx, req.Prompt, req.UserID)
	if err != nil {
		var incomplete *IncompletePromptError
		switch {
		case errors.Is(err, ErrEmptyPrompt):
			api.ErrorResponse(w, r, http.StatusBadRequest, PromptRequiredMsg)
		case errors.As(err, &incomplete):
			api.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, types.IncompletePromptResponse{
				Success: false,
				Error:   incomplete.Error(),
				Debug:   incomplete.Debug,
			})
		default:
			status, msg := itinerary.StatusForError(err)
			l.ErrorContext(ctx, "Prompt generation failed", slog.Int("status", status), slog.Any("error", err))
			api.ErrorResponse(w, r, status, msg)
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, resp)
}
