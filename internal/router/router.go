package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appMiddleware "github.com/FACorreiaa/ecowise-api/app/middleware"
	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	llmModels "github.com/FACorreiaa/ecowise-api/internal/api/llm_models"
	"github.com/FACorreiaa/ecowise-api/internal/api/prompt"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
)

const defaultRateLimit = 10

// Config contains dependencies needed for the router setup
type Config struct {
	TripsHandler     *trips.TripsHandler
	ItineraryHandler *itinerary.ItineraryHandler
	PromptHandler    *prompt.PromptHandler
	ModelsHandler    *llmModels.ModelsHandler
	AllowedOrigins   []string
	// RateLimit caps generation calls per client IP within RateWindow.
	RateLimit  int
	RateWindow time.Duration
	Logger     *slog.Logger
}

// SetupRouter builds the API routes. Server-wide middleware (request id,
// logging, recoverer) is applied by the caller.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	limit, window := cfg.RateLimit, cfg.RateWindow
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if window <= 0 {
		window = time.Minute
	}
	generationLimit := appMiddleware.RateLimit(limit, window, cfg.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/trips", cfg.TripsHandler.ListTrips)
		r.Get("/trips/{id}", cfg.TripsHandler.GetTrip)
		r.Delete("/trips/{id}", cfg.TripsHandler.DeleteTrip)
		r.Get("/models", cfg.ModelsHandler.ListModels)
		r.Post("/plan", cfg.PromptHandler.Plan)

		// Routes below call the text generation provider.
		r.Group(func(r chi.Router) {
			r.Use(generationLimit)
			r.Post("/trips/generate", cfg.ItineraryHandler.GenerateTrips)
			r.Post("/plan/generate", cfg.PromptHandler.GeneratePlan)
		})
	})

	return r
}
