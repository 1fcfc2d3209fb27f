package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/ecowise-api/internal/api/itinerary"
	llmModels "github.com/FACorreiaa/ecowise-api/internal/api/llm_models"
	"github.com/FACorreiaa/ecowise-api/internal/api/prompt"
	"github.com/FACorreiaa/ecowise-api/internal/api/trips"
	"github.com/FACorreiaa/ecowise-api/internal/router"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const generatedPlans = `{"plans": [{
  "plan_name": "Heritage by rail",
  "plan_rationale": "Shatabdi both ways keeps emissions low.",
  "itinerary": [
    {"day": 1, "date": "2026-11-01", "theme": "Old city", "activities": ["Amber Fort"],
     "accommodation": {"name": "Haveli Stay", "estimated_cost_inr": 2200}},
    {"day": 2, "date": "2026-11-02", "theme": "Markets", "activities": ["Johari Bazaar"]}
  ],
  "plan": [
    {"mode": "Rail", "source": "Delhi", "destination": "Jaipur", "cost": 800,
     "departureTime": "2026-11-01T06:05:00", "arrivalTime": "2026-11-01T10:30:00", "distanceKm": 300},
    {"mode": "Rail", "source": "Jaipur", "destination": "Delhi", "cost": 800,
     "departureTime": "2026-11-02T17:45:00", "arrivalTime": "2026-11-02T22:10:00", "distanceKm": 300}
  ],
  "total_cost_accommodation_activities": 3200
}]}`

// scriptedGenerator replays a fixed answer from the text generation provider.
type scriptedGenerator struct {
	mu   sync.Mutex
	text string
	err  error
}

func (g *scriptedGenerator) GenerateJSON(context.Context, string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.text, g.err
}

func (g *scriptedGenerator) ListModels(context.Context) ([]types.ModelInfo, error) {
	return []types.ModelInfo{{Name: "models/scripted", DisplayName: "Scripted"}}, nil
}

func (g *scriptedGenerator) Provider() string { return "gemini" }
func (g *scriptedGenerator) Model() string    { return "scripted" }

func (g *scriptedGenerator) answer(text string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.text, g.err = text, err
}

// memoryStore is a trips.Repository kept in memory.
type memoryStore struct {
	mu    sync.Mutex
	trips map[string]types.Trip
}

func (m *memoryStore) InsertMany(_ context.Context, in []types.Trip) ([]types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.Trip, len(in))
	for i, trip := range in {
		trip.ID = uuid.NewString()
		trip.CreatedAt = time.Now().UTC().Add(time.Duration(len(m.trips)) * time.Millisecond)
		m.trips[trip.ID] = trip
		out[i] = trip
	}
	return out, nil
}

func (m *memoryStore) List(_ context.Context, userID string) ([]types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []types.Trip{}
	for _, trip := range m.trips {
		if userID == "" || trip.UserID == userID {
			out = append(out, trip)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[id.String()]
	if !ok {
		return nil, types.ErrNotFound
	}
	return &trip, nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.trips[id.String()]
	delete(m.trips, id.String())
	return ok, nil
}

func (m *memoryStore) Ping(context.Context) error { return nil }

type interactionLog struct {
	mu   sync.Mutex
	rows []types.LLMInteraction
}

func (l *interactionLog) SaveInteraction(_ context.Context, in types.LLMInteraction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = append(l.rows, in)
	return nil
}

// E2ETestSuite drives the API through the real router with in-memory storage.
type E2ETestSuite struct {
	suite.Suite
	server       *httptest.Server
	client       *http.Client
	generator    *scriptedGenerator
	store        *memoryStore
	interactions *interactionLog
}

func (s *E2ETestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.generator = &scriptedGenerator{}
	s.store = &memoryStore{trips: map[string]types.Trip{}}
	s.interactions = &interactionLog{}

	demo, err := trips.NewDemoSource()
	s.Require().NoError(err)

	tripsService := trips.NewTripsService(trips.NewSourceSelector(trips.SourceAuto, s.store, demo, time.Second, logger), logger)
	itineraryService := itinerary.NewItineraryService(s.generator, s.store, s.interactions, 5*time.Second, logger)
	promptService := prompt.NewPromptService(prompt.NewExtractor(prompt.NewGazetteer(false)), tripsService, itineraryService, logger)

	s.server = httptest.NewServer(router.SetupRouter(&router.Config{
		TripsHandler:     trips.NewTripsHandler(tripsService, logger),
		ItineraryHandler: itinerary.NewItineraryHandler(itineraryService, logger),
		PromptHandler:    prompt.NewPromptHandler(promptService, logger),
		ModelsHandler:    llmModels.NewModelsHandler(llmModels.NewModelsService(s.generator, time.Minute, logger), logger),
		AllowedOrigins:   []string{"*"},
		RateLimit:        50,
		RateWindow:       time.Minute,
		Logger:           logger,
	}))
	s.client = &http.Client{Timeout: 10 * time.Second}
}

func (s *E2ETestSuite) TearDownTest() {
	s.server.Close()
}

func (s *E2ETestSuite) do(method, path string, body any, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func delhiJaipur() map[string]any {
	return map[string]any{
		"from":      "Delhi",
		"to":        "Jaipur",
		"startDate": "2026-11-01",
		"deadline":  "2026-11-02",
		"budget":    "12000",
		"userID":    "traveller-1",
		"travelSelection": map[string]any{
			"outboundId": "12015", "returnId": "12016",
			"outboundCost": 800, "returnCost": "800",
		},
	}
}

func (s *E2ETestSuite) TestGenerateListGetDelete() {
	s.generator.answer("```json\n"+generatedPlans+"\n```", nil)

	var generated []types.Trip
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/trips/generate", delhiJaipur(), &generated))
	s.Require().Len(generated, 1)
	trip := generated[0]
	s.Equal(types.TripSourceLLM, trip.Source)
	s.Equal(12000.0, trip.Budget)
	s.Equal(3200.0, trip.TotalCost)
	s.Equal(5600.0, trip.BudgetRemaining)
	s.Greater(trip.Emissions.TotalKg, 0.0)

	var listed []types.Trip
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/trips?userID=traveller-1", nil, &listed))
	s.Require().Len(listed, 1)
	s.Equal(trip.ID, listed[0].ID)

	var fetched types.Trip
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/trips/"+trip.ID, nil, &fetched))
	s.Equal("Heritage by rail", fetched.PlanName)
	s.Equal(trip.Itinerary, fetched.Itinerary)
	s.Equal(trip.Plan, fetched.Plan)
	s.Equal(trip.Emissions, fetched.Emissions)
	s.Equal(trip.TravelSelection, fetched.TravelSelection)
	s.Equal(trip.Itinerary, listed[0].Itinerary)

	var deleted types.DeleteTripResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, "/api/trips/"+trip.ID, nil, &deleted))
	s.True(deleted.Success)

	var missing types.Response
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/trips/"+trip.ID, nil, &missing))
	s.Equal("Trip not found", missing.Error)

	s.Require().Len(s.interactions.rows, 1)
}

func (s *E2ETestSuite) TestQuotaFailureStoresFallback() {
	s.generator.answer("", errors.New("Quota exceeded for generate requests"))

	var generated []types.Trip
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/trips/generate", delhiJaipur(), &generated))
	s.Require().Len(generated, 1)
	s.Equal(types.TripSourceFallback, generated[0].Source)
	s.Equal(1600.0, generated[0].TotalCost)

	var listed []types.Trip
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/trips", nil, &listed))
	s.Len(listed, 1)
}

func (s *E2ETestSuite) TestUnusableAnswers() {
	var resp types.Response

	s.generator.answer("   ", nil)
	s.Equal(http.StatusBadGateway, s.do(http.MethodPost, "/api/trips/generate", delhiJaipur(), &resp))

	s.generator.answer("Day 1: arrive in Jaipur", nil)
	s.Equal(http.StatusBadGateway, s.do(http.MethodPost, "/api/trips/generate", delhiJaipur(), &resp))

	s.generator.answer("", errors.New("permission denied"))
	s.Equal(http.StatusInternalServerError, s.do(http.MethodPost, "/api/trips/generate", delhiJaipur(), &resp))
	s.Equal("Trip generation failed", resp.Error)

	var listed []types.Trip
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/trips", nil, &listed))
	s.Empty(listed)
}

func (s *E2ETestSuite) TestPromptToGeneratedPlan() {
	s.generator.answer(generatedPlans, nil)

	var plan types.GeneratedPlanResponse
	status := s.do(http.MethodPost, "/api/plan/generate", map[string]string{
		"prompt": "Plan a 2 day trip from Delhi to Jaipur under 12k by train on 1 Nov",
		"userID": "traveller-2",
	}, &plan)

	s.Require().Equal(http.StatusCreated, status)
	s.Require().Len(plan.Trips, 1)
	s.Equal("traveller-2", plan.Trips[0].UserID)
	s.True(plan.Debug.Extracted.Preferences.Rail)
	s.Empty(plan.Debug.Missing)
}

func (s *E2ETestSuite) TestModels() {
	var models types.ModelsResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/models", nil, &models))
	s.Require().Len(models.Models, 1)
	s.Equal("models/scripted", models.Models[0].Name)
}

func TestE2ETestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end tests in short mode")
	}
	suite.Run(t, new(E2ETestSuite))
}
