package prompt

import (
	"math"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const (
	DefaultUserID       = "demo-user"
	IncompletePromptMsg = "Please include origin, destination, budget, and dates in the prompt."

	outboundShare    = 0.25
	returnShare      = 0.33
	promptOutboundID = "prompt_outbound"
	promptReturnID   = "prompt_return"
)

// Complete reports whether an intent carries enough to request a generation.
func Complete(intent types.TripIntent, dates *types.DateRange) bool {
	return intent.Origin != nil && intent.Destination != nil && intent.Budget != nil && dates != nil
}

// DeriveGenerateRequest turns an extracted intent into a generation request,
// splitting the budget into outbound and return transport allowances.
// Callers must check Complete first.
func DeriveGenerateRequest(intent types.TripIntent, dates types.DateRange, userID string) types.GenerateTripRequest {
	if userID == "" {
		userID = DefaultUserID
	}
	budget := *intent.Budget
	outbound := roundHalfUp(budget * outboundShare)
	ret := roundHalfUp(budget * returnShare)

	return types.GenerateTripRequest{
		From:      *intent.Origin,
		To:        *intent.Destination,
		StartDate: dates.StartDate,
		Deadline:  dates.EndDate,
		Budget:    budget,
		UserID:    userID,
		TravelSelection: map[string]any{
			"outboundId":   promptOutboundID,
			"returnId":     promptReturnID,
			"outboundCost": outbound,
			"returnCost":   ret,
		},
		BudgetRemaining:  math.Max(0, budget-outbound-ret),
		SideLocations:    []any{},
		AvoidNightTravel: false,
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
