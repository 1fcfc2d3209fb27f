package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/ecowise-api/internal/api/emissions"
	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	llmModels "github.com/FACorreiaa/ecowise-api/internal/api/llm_models"
	"github.com/FACorreiaa/ecowise-api/internal/api/prompt"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
	"github.com/FACorreiaa/ecowise-api/internal/router"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

// setupBenchmarkRouter serves demo trips with a scripted provider.
func setupBenchmarkRouter(b *testing.B) chi.Router {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))

	demo, err := trips.NewDemoSource()
	if err != nil {
		b.Fatal(err)
	}
	generator := &scriptedGenerator{text: generatedPlans}
	store := &memoryStore{trips: map[string]types.Trip{}}

	tripsService := trips.NewTripsService(trips.NewSourceSelector(trips.SourceDemo, nil, demo, 0, logger), logger)
	itineraryService := itinerary.NewItineraryService(generator, store, nil, time.Second, logger)
	promptService := prompt.NewPromptService(prompt.NewExtractor(prompt.NewGazetteer(false)), tripsService, itineraryService, logger)

	return router.SetupRouter(&router.Config{
		TripsHandler:     trips.NewTripsHandler(tripsService, logger),
		ItineraryHandler: itinerary.NewItineraryHandler(itineraryService, logger),
		PromptHandler:    prompt.NewPromptHandler(promptService, logger),
		ModelsHandler:    llmModels.NewModelsHandler(llmModels.NewModelsService(generator, time.Minute, logger), logger),
		RateLimit:        1 << 30,
		RateWindow:       time.Minute,
		Logger:           logger,
	})
}

func BenchmarkListTrips(b *testing.B) {
	r := setupBenchmarkRouter(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips", nil))
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

func BenchmarkPlanPrompt(b *testing.B) {
	r := setupBenchmarkRouter(b)
	body := []byte(`{"prompt":"Plan a 3 day trip from Bengaluru to Mysuru under 15k by train on 14 Feb"}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewReader(body)))
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

func BenchmarkGenerateTrips(b *testing.B) {
	r := setupBenchmarkRouter(b)
	body := []byte(`{"from":"Delhi","to":"Jaipur","startDate":"2026-11-01","deadline":"2026-11-02","budget":12000,"userID":"bench",
"travelSelection":{"outboundId":"12015","returnId":"12016","outboundCost":800,"returnCost":800}}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trips/generate", bytes.NewReader(body)))
		if w.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

func BenchmarkExtractPrompt(b *testing.B) {
	extractor := prompt.NewExtractor(prompt.NewGazetteer(true))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		extractor.Extract("Eco weekend from Pune to Goa for 2 days under ₹20,000 on 5 Dec, avoid flights, local food")
	}
}

func BenchmarkEstimateEmissions(b *testing.B) {
	km := types.Number(300)
	segments := []types.TripSegment{
		{Mode: "Rail", DistanceKm: &km},
		{Mode: "Bus", Source: "Jaipur", Destination: "Delhi"},
		{Mode: "Flight", DistanceKm: &km},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		emissions.Estimate(segments, 3)
	}
}
