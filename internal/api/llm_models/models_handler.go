package llmModels

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

type ModelsHandler struct {
	modelsService Service
	logger        *slog.Logger
}

func NewModelsHandler(modelsService Service, logger *slog.Logger) *ModelsHandler {
	return &ModelsHandler{
		modelsService: modelsService,
		logger:        logger,
	}
}

// ListModels godoc
// @Summary      List models
// @Description  Lists the models offered by the configured text generation provider.
// @Tags         Models
// @Produce      json
// @Success      200 {object} types.ModelsResponse
// @Failure      500 {object} types.Response "Provider not configured or unavailable"
// @Router       /models [get]
func (h *ModelsHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ModelsHandler").Start(r.Context(), "ListModels", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/models"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListModels"))

	models, err := h.modelsService.ListModels(ctx)
	if err != nil {
		var cfgErr *types.ConfigurationError
		if errors.As(err, &cfgErr) {
			api.ErrorResponse(w, r, http.StatusInternalServerError, cfgErr.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to list models", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list models")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.ModelsResponse{Models: models})
}
