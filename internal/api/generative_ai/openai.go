package generativeAI

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

// OpenAIClient generates itineraries through the chat completions API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

var _ TextGenerator = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, model string, temperature float32) *OpenAIClient {
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}
}

func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "OpenAI.GenerateJSON", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", c.model),
	))
	defer span.End()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an eco-friendly travel planner. Reply with JSON only. Wrap plan arrays in an object under the key \"plans\"."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create chat completion")
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		span.SetStatus(codes.Ok, "No choices returned")
		return "", nil
	}

	content := resp.Choices[0].Message.Content
	span.SetAttributes(
		attribute.Int("response.length", len(content)),
		attribute.Int("usage.total_tokens", resp.Usage.TotalTokens),
	)
	span.SetStatus(codes.Ok, "Content generated successfully")
	return content, nil
}

func (c *OpenAIClient) ListModels(ctx context.Context) ([]types.ModelInfo, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "OpenAI.ListModels")
	defer span.End()

	list, err := c.client.ListModels(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list models")
		return nil, fmt.Errorf("openai list models: %w", err)
	}

	models := make([]types.ModelInfo, 0, len(list.Models))
	for _, m := range list.Models {
		models = append(models, types.ModelInfo{
			Name:                       m.ID,
			DisplayName:                m.ID,
			SupportedGenerationMethods: []string{"chat.completions"},
		})
	}
	span.SetStatus(codes.Ok, "Models listed")
	return models, nil
}

func (c *OpenAIClient) Provider() string { return ProviderOpenAI }
func (c *OpenAIClient) Model() string    { return c.model }
