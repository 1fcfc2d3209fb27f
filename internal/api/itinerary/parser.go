package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/ecowise-api/internal/api/emissions"
	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const overnightWarning = "Overnight travel detected despite avoidNightTravel preference"

// generatedPlan is one plan object as returned by the text generator.
type generatedPlan struct {
	PlanName                         string               `json:"plan_name"`
	PlanRationale                    string               `json:"plan_rationale"`
	Itinerary                        []types.ItineraryDay `json:"itinerary"`
	Plan                             []types.TripSegment  `json:"plan"`
	TotalCostAccommodationActivities types.Number         `json:"total_cost_accommodation_activities"`
}

// cleanJSONResponse removes every markdown fence marker from raw model output.
func cleanJSONResponse(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// parsePlans accepts a list of plans, a single plan object, or an object
// wrapping the list under "plans". Null entries are dropped; a reply with no
// plan object left is invalid.
func parsePlans(raw string) ([]generatedPlan, error) {
	data := []byte(cleanJSONResponse(raw))
	if len(data) == 0 {
		return nil, fmt.Errorf("no JSON content: %w", types.ErrUpstreamInvalidJSON)
	}

	if data[0] == '[' {
		var decoded []*generatedPlan
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrUpstreamInvalidJSON, err)
		}
		plans := make([]generatedPlan, 0, len(decoded))
		for _, plan := range decoded {
			if plan != nil {
				plans = append(plans, *plan)
			}
		}
		if len(plans) == 0 {
			return nil, fmt.Errorf("no plan objects: %w", types.ErrUpstreamInvalidJSON)
		}
		return plans, nil
	}

	var wrapper struct {
		Plans json.RawMessage `json:"plans"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && len(bytes.TrimSpace(wrapper.Plans)) > 0 && wrapper.Plans[0] == '[' {
		return parsePlans(string(wrapper.Plans))
	}

	var plan *generatedPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUpstreamInvalidJSON, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("null plan: %w", types.ErrUpstreamInvalidJSON)
	}
	return []generatedPlan{*plan}, nil
}

// buildTrip turns one generated plan into a trip ready for persistence.
func buildTrip(req types.TripRequest, plan generatedPlan, source types.TripSource) types.Trip {
	itinerary := make([]types.ItineraryDay, len(plan.Itinerary))
	for i, day := range plan.Itinerary {
		day.Date = normalizeISODate(day.Date)
		if day.Activities == nil {
			day.Activities = []string{}
		}
		itinerary[i] = day
	}

	segments := plan.Plan
	if segments == nil {
		segments = []types.TripSegment{}
	}

	transportCost := req.TravelSelection.OutboundCost + req.TravelSelection.ReturnCost
	overnight := false
	for _, seg := range segments {
		transportCost += seg.Cost.Float()
		if crossesMidnight(seg) {
			overnight = true
		}
	}

	accommodationCost := plan.TotalCostAccommodationActivities.Float()
	remaining := req.Budget - transportCost - accommodationCost
	if req.BudgetRemaining != nil {
		remaining = *req.BudgetRemaining
	}

	warnings := []string{}
	if overnight && req.AvoidNightTravel {
		warnings = append(warnings, overnightWarning)
	}

	return types.Trip{
		From:                             req.From,
		To:                               req.To,
		StartDate:                        req.StartDate,
		Deadline:                         req.Deadline,
		Budget:                           req.Budget,
		UserID:                           req.UserID,
		PlanName:                         plan.PlanName,
		PlanRationale:                    plan.PlanRationale,
		Itinerary:                        itinerary,
		Plan:                             segments,
		TotalCostAccommodationActivities: accommodationCost,
		TotalCost:                        transportCost,
		BudgetRemaining:                  remaining,
		TravelSelection:                  req.TravelSelection,
		SideLocations:                    req.SideLocations,
		Warnings:                         warnings,
		Emissions:                        emissions.Estimate(segments, len(itinerary)),
		Source:                           source,
	}
}

// normalizeISODate rewrites parseable dates in the millisecond UTC layout and
// leaves anything else untouched.
func normalizeISODate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(isoTimestamp)
}

// crossesMidnight reports whether a segment departs and arrives on different
// calendar days. Segments without two parseable times never count.
func crossesMidnight(seg types.TripSegment) bool {
	dep, okDep := ParseDate(seg.DepartureTime)
	arr, okArr := ParseDate(seg.ArrivalTime)
	if !okDep || !okArr {
		return false
	}
	dy, dm, dd := dep.Date()
	ay, am, ad := arr.Date()
	return dy != ay || dm != am || dd != ad
}
