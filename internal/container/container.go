package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/ecowise-api/app/db"
	"github.com/FACorreiaa/ecowise-api/config"
	generativeAI "github.com/FACorreiaa/ecowise-api/internal/api/generative_ai"
	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	llmInteraction "github.com/FACorreiaa/ecowise-api/internal/api/llm_interaction"
	llmModels "github.com/FACorreiaa/ecowise-api/internal/api/llm_models"
	"github.com/FACorreiaa/ecowise-api/internal/api/prompt"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
	"github.com/FACorreiaa/ecowise-api/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	Pool             *pgxpool.Pool
	DBConfig         *database.DatabaseConfig
	Generator        generativeAI.TextGenerator
	TripsHandler     *trips.TripsHandler
	ItineraryHandler *itinerary.ItineraryHandler
	PromptHandler    *prompt.PromptHandler
	ModelsHandler    *llmModels.ModelsHandler
}

// NewContainer initializes and returns a new dependency container. The pool
// connects lazily, so an unreachable database does not stop startup; the
// source selector falls back to demo trips in auto mode.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	pool, err := database.Init(ctx, dbConfig, logger)
	if err != nil {
		return nil, err
	}

	generator, err := generativeAI.NewTextGenerator(ctx, generativeAI.Settings{
		Provider:     cfg.LLM.Provider,
		GeminiAPIKey: cfg.LLM.Gemini.APIKey,
		GeminiModel:  cfg.LLM.Gemini.Model,
		OpenAIAPIKey: cfg.LLM.OpenAI.APIKey,
		OpenAIModel:  cfg.LLM.OpenAI.Model,
		Temperature:  cfg.LLM.Temperature,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}
	logger.Info("Text generator ready",
		slog.String("provider", generator.Provider()),
		slog.String("model", generator.Model()),
	)

	demoSource, err := trips.NewDemoSource()
	if err != nil {
		pool.Close()
		return nil, err
	}

	// repositories
	tripRepo := trips.NewPostgresTripsRepo(pool, logger)
	interactionRepo := llmInteraction.NewPostgresLlmInteractionRepo(pool, logger)

	// services
	selector := trips.NewSourceSelector(cfg.Data.Source, tripRepo, demoSource, cfg.Data.PingTimeout, logger)
	tripsService := trips.NewTripsService(selector, logger)
	itineraryService := itinerary.NewItineraryService(generator, tripRepo, interactionRepo, cfg.LLM.Timeout, logger)
	extractor := prompt.NewExtractor(prompt.NewGazetteer(cfg.Data.WholeWordMatch))
	promptService := prompt.NewPromptService(extractor, tripsService, itineraryService, logger)
	modelsService := llmModels.NewModelsService(generator, cfg.LLM.ModelsTTL, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Pool:             pool,
		DBConfig:         dbConfig,
		Generator:        generator,
		TripsHandler:     trips.NewTripsHandler(tripsService, logger),
		ItineraryHandler: itinerary.NewItineraryHandler(itineraryService, logger),
		PromptHandler:    prompt.NewPromptHandler(promptService, logger),
		ModelsHandler:    llmModels.NewModelsHandler(modelsService, logger),
	}, nil
}

// RouterConfig returns the router dependencies held by the container.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		TripsHandler:     c.TripsHandler,
		ItineraryHandler: c.ItineraryHandler,
		PromptHandler:    c.PromptHandler,
		ModelsHandler:    c.ModelsHandler,
		AllowedOrigins:   c.Config.Server.AllowedOrigins,
		RateLimit:        c.Config.RateLimit.Requests,
		RateWindow:       c.Config.RateLimit.Window,
		Logger:           c.Logger,
	}
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

// RunMigrations runs database migrations
func (c *Container) RunMigrations() error {
	return database.RunMigrations(c.DBConfig.ConnectionURL, c.Logger)
}
