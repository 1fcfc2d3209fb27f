package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/FACorreiaa/ecowise-api/docs"
	generativeAI "github.com/FACorreiaa/ecowise-api/internal/api/generative_ai"
	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	llmModels "github.com/FACorreiaa/ecowise-api/internal/api/llm_models"
	"github.com/FACorreiaa/ecowise-api/internal/api/prompt"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
)

// newTestRouter wires real handlers over demo trips and a provider without
// an API key.
func newTestRouter(t *testing.T, rateLimit int) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	demo, err := trips.NewDemoSource()
	require.NoError(t, err)
	generator := generativeAI.NewUnconfigured(generativeAI.ProviderGemini, generativeAI.DefaultGeminiModel, "GEMINI_API_KEY")

	tripsService := trips.NewTripsService(trips.NewSourceSelector(trips.SourceDemo, nil, demo, 0, logger), logger)
	itineraryService := itinerary.NewItineraryService(generator, nil, nil, time.Second, logger)
	promptService := prompt.NewPromptService(prompt.NewExtractor(prompt.NewGazetteer(false)), tripsService, itineraryService, logger)

	return SetupRouter(&Config{
		TripsHandler:     trips.NewTripsHandler(tripsService, logger),
		ItineraryHandler: itinerary.NewItineraryHandler(itineraryService, logger),
		PromptHandler:    prompt.NewPromptHandler(promptService, logger),
		ModelsHandler:    llmModels.NewModelsHandler(llmModels.NewModelsService(generator, time.Minute, logger), logger),
		AllowedOrigins:   []string{"http://localhost:5173"},
		RateLimit:        rateLimit,
		RateWindow:       time.Minute,
		Logger:           logger,
	})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	r := newTestRouter(t, 100)

	tests := []struct {
		name         string
		method, path string
		body         string
		wantStatus   int
		wantContains string
	}{
		{"ping", http.MethodGet, "/ping", "", http.StatusOK, "pong"},
		{"list trips", http.MethodGet, "/api/trips", "", http.StatusOK, `"_id":"mock-1"`},
		{"list trips for unknown user", http.MethodGet, "/api/trips?userID=nobody", "", http.StatusOK, "[]"},
		{"get trip", http.MethodGet, "/api/trips/mock-2", "", http.StatusOK, `"_id":"mock-2"`},
		{"get missing trip", http.MethodGet, "/api/trips/mock-9", "", http.StatusNotFound, "Trip not found"},
		{"delete trip", http.MethodDelete, "/api/trips/mock-1", "", http.StatusOK, `"success":false`},
		{"plan", http.MethodPost, "/api/plan", `{"prompt":"weekend in jaipur"}`, http.StatusOK, `"prompt":"weekend in jaipur"`},
		{"plan without prompt", http.MethodPost, "/api/plan", `{}`, http.StatusBadRequest, "Prompt is required."},
		{"models without key", http.MethodGet, "/api/models", "", http.StatusInternalServerError, "GEMINI_API_KEY"},
		{"generate without key", http.MethodPost, "/api/trips/generate",
			`{"from":"Delhi","to":"Jaipur","startDate":"2026-11-01","deadline":"2026-11-03","budget":9000,"userID":"u1","travelSelection":{"outboundId":"a","returnId":"b","outboundCost":500,"returnCost":500}}`,
			http.StatusInternalServerError, "GEMINI_API_KEY"},
		{"generate invalid", http.MethodPost, "/api/trips/generate", `{"from":"Delhi"}`, http.StatusBadRequest, ""},
		{"plan generate incomplete", http.MethodPost, "/api/plan/generate", `{"prompt":"weekend in jaipur"}`, http.StatusUnprocessableEntity, `"missing"`},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantContains != "" {
				assert.Contains(t, w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestSetupRouter_RateLimitsGeneration(t *testing.T) {
	r := newTestRouter(t, 2)

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodPost, "/api/plan/generate", `{"prompt":"weekend in jaipur"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	}

	w := serve(r, http.MethodPost, "/api/plan/generate", `{"prompt":"weekend in jaipur"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")

	// Read-only routes are not limited.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/trips", "").Code)
	}
}

func TestSetupRouter_DefaultRateLimit(t *testing.T) {
	r := newTestRouter(t, 0)

	for i := 0; i < defaultRateLimit; i++ {
		require.NotEqual(t, http.StatusTooManyRequests,
			serve(r, http.MethodPost, "/api/plan/generate", `{"prompt":"goa"}`).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests,
		serve(r, http.MethodPost, "/api/plan/generate", `{"prompt":"goa"}`).Code)
}

func TestSetupRouter_CORS(t *testing.T) {
	r := newTestRouter(t, 10)

	req := httptest.NewRequest(http.MethodOptions, "/api/trips", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_SwaggerDoc(t *testing.T) {
	r := newTestRouter(t, 10)

	w := serve(r, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/trips/generate"`)
}
