package itinerary

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

func validRequest() types.GenerateTripRequest {
	return types.GenerateTripRequest{
		From:      "Bengaluru",
		To:        "Mysuru",
		StartDate: "2026-11-02",
		Deadline:  "2026-11-04T00:00:00.000Z",
		Budget:    float64(12000),
		UserID:    "demo-user",
		TravelSelection: map[string]any{
			"outboundId":   "KSR-12",
			"returnId":     "KSR-13",
			"outboundCost": float64(3000),
			"returnCost":   "4000",
		},
	}
}

func TestValidateTripRequest_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.GenerateTripRequest)
		want   types.ValidationKind
	}{
		{"missing from", func(r *types.GenerateTripRequest) { r.From = "" }, types.MissingFields},
		{"blank user", func(r *types.GenerateTripRequest) { r.UserID = "  " }, types.MissingFields},
		{"missing budget", func(r *types.GenerateTripRequest) { r.Budget = nil }, types.MissingFields},
		{"empty budget string", func(r *types.GenerateTripRequest) { r.Budget = "" }, types.MissingFields},
		{"bad start date", func(r *types.GenerateTripRequest) { r.StartDate = "next friday" }, types.InvalidDateFormat},
		{"impossible deadline", func(r *types.GenerateTripRequest) { r.Deadline = "2026-13-40" }, types.InvalidDateFormat},
		{"zero budget", func(r *types.GenerateTripRequest) { r.Budget = float64(0) }, types.InvalidBudget},
		{"negative budget", func(r *types.GenerateTripRequest) { r.Budget = "-5" }, types.InvalidBudget},
		{"non numeric budget", func(r *types.GenerateTripRequest) { r.Budget = "lots" }, types.InvalidBudget},
		{"object budget", func(r *types.GenerateTripRequest) { r.Budget = map[string]any{} }, types.InvalidBudget},
		{"NaN budget string", func(r *types.GenerateTripRequest) { r.Budget = "NaN" }, types.InvalidBudget},
		{"NaN budget", func(r *types.GenerateTripRequest) { r.Budget = math.NaN() }, types.InvalidBudget},
		{"no selection", func(r *types.GenerateTripRequest) { r.TravelSelection = nil }, types.MissingTravelSelection},
		{"selection not an object", func(r *types.GenerateTripRequest) { r.TravelSelection = "KSR-12" }, types.MissingTravelSelection},
		{"selection without return", func(r *types.GenerateTripRequest) {
			r.TravelSelection = map[string]any{"outboundId": "KSR-12"}
		}, types.MissingTravelSelection},
		{"false outbound id", func(r *types.GenerateTripRequest) {
			r.TravelSelection = map[string]any{"outboundId": false, "returnId": "b"}
		}, types.MissingTravelSelection},
		{"zero return id", func(r *types.GenerateTripRequest) {
			r.TravelSelection = map[string]any{"outboundId": "a", "returnId": float64(0)}
		}, types.MissingTravelSelection},
		{"non numeric cost", func(r *types.GenerateTripRequest) {
			r.TravelSelection = map[string]any{"outboundId": "a", "returnId": "b", "outboundCost": "cheap"}
		}, types.InvalidTravelCosts},
		{"list cost", func(r *types.GenerateTripRequest) {
			r.TravelSelection = map[string]any{"outboundId": "a", "returnId": "b", "returnCost": []any{1.0}}
		}, types.InvalidTravelCosts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := ValidateTripRequest(req)

			var vErr *types.ValidationError
			require.True(t, errors.As(err, &vErr), "expected a validation error, got %v", err)
			assert.Equal(t, tt.want, vErr.Kind)
		})
	}
}

func TestValidateTripRequest_Coercion(t *testing.T) {
	req := validRequest()
	req.Budget = "12000"
	req.BudgetRemaining = float64(900)
	req.SideLocations = []any{map[string]any{"name": "Srirangapatna", "days": "1"}}
	req.AvoidNightTravel = "yes"

	out, err := ValidateTripRequest(req)

	require.NoError(t, err)
	assert.Equal(t, 12000.0, out.Budget)
	assert.Equal(t, types.TravelSelection{OutboundID: "KSR-12", ReturnID: "KSR-13", OutboundCost: 3000, ReturnCost: 4000}, out.TravelSelection)
	require.NotNil(t, out.BudgetRemaining)
	assert.Equal(t, 900.0, *out.BudgetRemaining)
	require.Len(t, out.SideLocations, 1)
	assert.Equal(t, "Srirangapatna", out.SideLocations[0].Name)
	assert.Equal(t, types.Number(1), out.SideLocations[0].Days)
	assert.True(t, out.AvoidNightTravel)
}

func TestValidateTripRequest_Defaults(t *testing.T) {
	req := validRequest()
	req.TravelSelection = map[string]any{"outboundId": "a", "returnId": "b"}
	req.BudgetRemaining = "900"
	req.SideLocations = "Srirangapatna"

	out, err := ValidateTripRequest(req)

	require.NoError(t, err)
	assert.Zero(t, out.TravelSelection.OutboundCost)
	assert.Zero(t, out.TravelSelection.ReturnCost)
	assert.Nil(t, out.BudgetRemaining, "only JSON numbers are kept")
	assert.NotNil(t, out.SideLocations)
	assert.Empty(t, out.SideLocations)
	assert.False(t, out.AvoidNightTravel)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"2026-11-02", true, "2026-11-02T00:00:00.000Z"},
		{"2026-11-02T10:30:00+05:30", true, "2026-11-02T05:00:00.000Z"},
		{"2026-11-02T06:10:00", true, "2026-11-02T06:10:00.000Z"},
		{"2026-11-02T06:10", true, "2026-11-02T06:10:00.000Z"},
		{"02/11/2026", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format(isoTimestamp))
			}
		})
	}
}
