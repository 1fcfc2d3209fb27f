package generativeAI

import (
	"context"
	"fmt"
	"strings"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// TextGenerator is a remote model that answers a prompt with JSON text.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	ListModels(ctx context.Context) ([]types.ModelInfo, error)
	Provider() string
	Model() string
}

// Settings selects and configures a provider.
type Settings struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	Temperature  float32
}

// NewTextGenerator builds the configured provider. A missing API key is not
// an error here: the returned generator reports ErrConfiguration per call so
// the rest of the API keeps serving.
func NewTextGenerator(ctx context.Context, s Settings) (TextGenerator, error) {
	switch strings.ToLower(s.Provider) {
	case ProviderOpenAI:
		model := firstNonEmpty(s.OpenAIModel, DefaultOpenAIModel)
		if s.OpenAIAPIKey == "" {
			return NewUnconfigured(ProviderOpenAI, model, "OPENAI_API_KEY"), nil
		}
		return NewOpenAIClient(s.OpenAIAPIKey, model, s.Temperature), nil
	case ProviderGemini, "":
		model := firstNonEmpty(s.GeminiModel, DefaultGeminiModel)
		if s.GeminiAPIKey == "" {
			return NewUnconfigured(ProviderGemini, model, "GEMINI_API_KEY"), nil
		}
		return NewAIClient(ctx, s.GeminiAPIKey, model, s.Temperature)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", s.Provider)
	}
}

// Unconfigured stands in for a provider whose API key is not set.
type Unconfigured struct {
	provider string
	model    string
	setting  string
}

var _ TextGenerator = (*Unconfigured)(nil)

func NewUnconfigured(provider, model, setting string) *Unconfigured {
	return &Unconfigured{provider: provider, model: model, setting: setting}
}

func (u *Unconfigured) GenerateJSON(context.Context, string) (string, error) {
	return "", &types.ConfigurationError{Setting: u.setting}
}

func (u *Unconfigured) ListModels(context.Context) ([]types.ModelInfo, error) {
	return nil, &types.ConfigurationError{Setting: u.setting}
}

func (u *Unconfigured) Provider() string { return u.provider }
func (u *Unconfigured) Model() string    { return u.model }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
