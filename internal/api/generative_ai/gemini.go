package generativeAI

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

// AIClient talks to the Gemini API.
type AIClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ TextGenerator = (*AIClient)(nil)

func NewAIClient(ctx context.Context, apiKey, model string, temperature float32) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &AIClient{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (ai *AIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateJSON", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(ai.temperature),
	}
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	responseText := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return responseText, nil
}

func (ai *AIClient) ListModels(ctx context.Context) ([]types.ModelInfo, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "ListModels")
	defer span.End()

	page, err := ai.client.Models.List(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list models")
		return nil, fmt.Errorf("gemini list models: %w", err)
	}

	models := make([]types.ModelInfo, 0, len(page.Items))
	for _, m := range page.Items {
		if m == nil {
			continue
		}
		models = append(models, types.ModelInfo{
			Name:                       m.Name,
			DisplayName:                m.DisplayName,
			SupportedGenerationMethods: m.SupportedActions,
		})
	}
	span.SetAttributes(attribute.Int("models.count", len(models)))
	span.SetStatus(codes.Ok, "Models listed")
	return models, nil
}

func (ai *AIClient) Provider() string { return ProviderGemini }
func (ai *AIClient) Model() string    { return ai.model }
