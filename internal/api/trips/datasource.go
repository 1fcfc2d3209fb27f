package trips

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/ecowise-api/internal/api/emissions"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const (
	SourceLive = "live"
	SourceDemo = "demo"
	SourceAuto = "auto"
)

// DataSource is where trips are read from for one request.
type DataSource interface {
	Name() string
	ListTrips(ctx context.Context, userID string) ([]types.Trip, error)
	GetTrip(ctx context.Context, id string) (*types.Trip, error)
	// DeleteTrip reports whether a trip was removed.
	DeleteTrip(ctx context.Context, id string) (bool, error)
	// TripsForPrompt returns stored trips relevant to a free-text prompt.
	TripsForPrompt(ctx context.Context, prompt string, intent types.TripIntent) ([]types.Trip, error)
}

// LiveSource reads from the trip repository.
type LiveSource struct {
	repo Repository
}

var _ DataSource = (*LiveSource)(nil)

func NewLiveSource(repo Repository) *LiveSource {
	return &LiveSource{repo: repo}
}

func (s *LiveSource) Name() string { return SourceLive }

func (s *LiveSource) ListTrips(ctx context.Context, userID string) ([]types.Trip, error) {
	return s.repo.List(ctx, userID)
}

func (s *LiveSource) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("trip %q not found: %w", id, types.ErrNotFound)
	}
	return s.repo.GetByID(ctx, parsed)
}

func (s *LiveSource) DeleteTrip(ctx context.Context, id string) (bool, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	return s.repo.Delete(ctx, parsed)
}

// TripsForPrompt matches stored trips on the extracted route. With neither end
// of the route known every stored trip is returned.
func (s *LiveSource) TripsForPrompt(ctx context.Context, _ string, intent types.TripIntent) ([]types.Trip, error) {
	all, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if intent.Origin == nil && intent.Destination == nil {
		return all, nil
	}
	matched := []types.Trip{}
	for _, trip := range all {
		if intent.Origin != nil && !strings.EqualFold(trip.From, *intent.Origin) {
			continue
		}
		if intent.Destination != nil && !strings.EqualFold(trip.To, *intent.Destination) {
			continue
		}
		matched = append(matched, trip)
	}
	return matched, nil
}

//go:embed demo_trips.json
var demoTripsJSON []byte

var (
	jaipurPromptRe  = regexp.MustCompile(`(?i)jaipur`)
	coastalPromptRe = regexp.MustCompile(`(?i)mumbai|goa`)
)

// DemoSource serves the bundled sample trips. It is read only.
type DemoSource struct {
	trips []types.Trip
}

var _ DataSource = (*DemoSource)(nil)

// NewDemoSource decodes the bundled trips and derives their emissions.
func NewDemoSource() (*DemoSource, error) {
	var trips []types.Trip
	if err := json.Unmarshal(demoTripsJSON, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode demo trips: %w", err)
	}
	for i := range trips {
		trips[i].Emissions = emissions.Estimate(trips[i].Plan, len(trips[i].Itinerary))
	}
	return &DemoSource{trips: trips}, nil
}

func (s *DemoSource) Name() string { return SourceDemo }

func (s *DemoSource) ListTrips(_ context.Context, userID string) ([]types.Trip, error) {
	out := []types.Trip{}
	for _, trip := range s.trips {
		if userID == "" || trip.UserID == userID {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (s *DemoSource) GetTrip(_ context.Context, id string) (*types.Trip, error) {
	for _, trip := range s.trips {
		if trip.ID == id {
			t := trip
			return &t, nil
		}
	}
	return nil, fmt.Errorf("trip %q not found: %w", id, types.ErrNotFound)
}

func (s *DemoSource) DeleteTrip(context.Context, string) (bool, error) {
	return false, nil
}

func (s *DemoSource) TripsForPrompt(_ context.Context, prompt string, _ types.TripIntent) ([]types.Trip, error) {
	switch {
	case jaipurPromptRe.MatchString(prompt):
		return s.slice(1, 2), nil
	case coastalPromptRe.MatchString(prompt):
		return s.slice(2, 3), nil
	default:
		return s.slice(0, 2), nil
	}
}

func (s *DemoSource) slice(from, to int) []types.Trip {
	from, to = min(from, len(s.trips)), min(to, len(s.trips))
	out := make([]types.Trip, to-from)
	copy(out, s.trips[from:to])
	return out
}

// Pinger checks that the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SourceSelector picks the DataSource for a request.
type SourceSelector struct {
	logger      *slog.Logger
	mode        string
	live        *LiveSource
	demo        *DemoSource
	pinger      Pinger
	pingTimeout time.Duration
}

func NewSourceSelector(mode string, repo Repository, demo *DemoSource, pingTimeout time.Duration, logger *slog.Logger) *SourceSelector {
	if pingTimeout <= 0 {
		pingTimeout = 500 * time.Millisecond
	}
	s := &SourceSelector{
		logger:      logger,
		mode:        strings.ToLower(mode),
		demo:        demo,
		pingTimeout: pingTimeout,
	}
	if repo != nil {
		s.live = NewLiveSource(repo)
		s.pinger = repo
	}
	return s
}

// Select returns the live source when it is configured and reachable, and
// the demo source otherwise. Mode demo always returns the demo source.
func (s *SourceSelector) Select(ctx context.Context) DataSource {
	switch {
	case s.mode == SourceDemo || s.live == nil:
		return s.demo
	case s.mode == SourceLive:
		return s.live
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()
	if err := s.pinger.Ping(pingCtx); err != nil {
		s.logger.WarnContext(ctx, "Trip store unreachable, serving demo trips", slog.Any("error", err))
		return s.demo
	}
	return s.live
}
