package llmModels

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	generativeAI "github.com/FACorreiaa/ecowise-api/internal/api/generative_ai"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const DefaultModelsTTL = 10 * time.Minute

var _ Service = (*ServiceImpl)(nil)

// Service lists the models offered by the configured provider.
type Service interface {
	ListModels(ctx context.Context) ([]types.ModelInfo, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	generator generativeAI.TextGenerator
	cache     *cache.Cache
}

func NewModelsService(generator generativeAI.TextGenerator, ttl time.Duration, logger *slog.Logger) *ServiceImpl {
	if ttl <= 0 {
		ttl = DefaultModelsTTL
	}
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
		cache:     cache.New(ttl, 2*ttl),
	}
}

func (s *ServiceImpl) cacheKey() string {
	return s.generator.Provider() + ":models"
}

// ListModels serves from the cache while the entry is fresh. Failures are
// never cached.
func (s *ServiceImpl) ListModels(ctx context.Context) ([]types.ModelInfo, error) {
	ctx, span := otel.Tracer("ModelsService").Start(ctx, "ListModels", trace.WithAttributes(
		attribute.String("llm.provider", s.generator.Provider()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "ListModels"))

	if cached, found := s.cache.Get(s.cacheKey()); found {
		if models, ok := cached.([]types.ModelInfo); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			span.SetStatus(codes.Ok, "Served from cache")
			return models, nil
		}
	}

	models, err := s.generator.ListModels(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list models", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "List failed")
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	if models == nil {
		models = []types.ModelInfo{}
	}

	s.cache.Set(s.cacheKey(), models, cache.DefaultExpiration)
	l.DebugContext(ctx, "Models listed", slog.Int("count", len(models)))
	span.SetAttributes(attribute.Bool("cache.hit", false), attribute.Int("models.count", len(models)))
	span.SetStatus(codes.Ok, "Models listed")
	return models, nil
}
