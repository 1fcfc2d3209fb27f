package trips

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

type fixedPicker struct {
	source DataSource
}

func (p fixedPicker) Select(context.Context) DataSource { return p.source }

func TestTripsService_Demo(t *testing.T) {
	svc := NewTripsService(fixedPicker{source: newDemo(t)}, discardLogger())
	ctx := context.Background()

	trips, err := svc.ListTrips(ctx, "demo-user")
	require.NoError(t, err)
	assert.Len(t, trips, 3)

	trip, err := svc.GetTrip(ctx, "mock-3")
	require.NoError(t, err)
	assert.Equal(t, types.TripSourceDemo, trip.Source)

	matched, err := svc.TripsForPrompt(ctx, "plan jaipur", types.TripIntent{})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "mock-2", matched[0].ID)
}

func TestTripsService_Live(t *testing.T) {
	id := uuid.New()
	repo := &memoryRepo{trips: []types.Trip{{ID: id.String(), From: "Delhi", To: "Jaipur", UserID: "u1"}}}
	svc := NewTripsService(fixedPicker{source: NewLiveSource(repo)}, discardLogger())
	ctx := context.Background()

	deleted, err := svc.DeleteTrip(ctx, id.String())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteTrip(ctx, id.String())
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.GetTrip(ctx, id.String())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTripsService_ListError(t *testing.T) {
	repo := &memoryRepo{listErr: errors.New("relation does not exist")}
	svc := NewTripsService(fixedPicker{source: NewLiveSource(repo)}, discardLogger())

	trips, err := svc.ListTrips(context.Background(), "")

	assert.Nil(t, trips)
	assert.ErrorContains(t, err, "list trips from live")
}
