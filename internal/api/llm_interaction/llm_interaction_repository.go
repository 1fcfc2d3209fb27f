package llmInteraction

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/ecowise-api/app/db"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

var _ Repository = (*PostgresLlmInteractionRepo)(nil)

// Repository records every attempt made against the text generator.
type Repository interface {
	SaveInteraction(ctx context.Context, interaction types.LLMInteraction) error
}

type PostgresLlmInteractionRepo struct {
	logger *slog.Logger
	pgpool database.Pool
}

func NewPostgresLlmInteractionRepo(pgpool database.Pool, logger *slog.Logger) *PostgresLlmInteractionRepo {
	return &PostgresLlmInteractionRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresLlmInteractionRepo) SaveInteraction(ctx context.Context, interaction types.LLMInteraction) error {
	ctx, span := otel.Tracer("LlmInteractionRepo").Start(ctx, "SaveInteraction", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("llm.outcome", string(interaction.Outcome)),
	))
	defer span.End()

	query := `
        INSERT INTO llm_interactions (
            user_id, prompt, response_text, model_used, provider, latency_ms, outcome
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.pgpool.Exec(ctx, query,
		interaction.UserID, interaction.Prompt, interaction.Response,
		interaction.Model, interaction.Provider, interaction.LatencyMs, string(interaction.Outcome),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Insert failed")
		r.logger.ErrorContext(ctx, "Failed to save llm interaction", slog.Any("error", err))
		return fmt.Errorf("failed to save llm interaction: %w", err)
	}
	span.SetStatus(codes.Ok, "Interaction saved")
	return nil
}
