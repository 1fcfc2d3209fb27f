package itinerary

import (
	"math"
	"time"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const (
	isoTimestamp = "2006-01-02T15:04:05.000Z"

	fallbackPlanName      = "Eco smart fallback plan"
	fallbackPlanRationale = "Fallback plan generated to keep the demo running. Focuses on walkability, local food, and low-impact activities."
	fallbackStayName      = "Eco stay (demo)"
	daytimeOnlyWarning    = "Fallback plan uses daytime travel only."
	fallbackStayShare     = 0.6
)

// buildFallbackPlan returns the fixed two-day template used when the text
// generator is unavailable. It never fails and never calls out.
func buildFallbackPlan(req types.TripRequest) generatedPlan {
	outbound := req.TravelSelection.OutboundCost
	ret := req.TravelSelection.ReturnCost
	accommodationCost := math.Max(0, jsRound((req.Budget-outbound-ret)*fallbackStayShare))
	nightly := math.Max(0, jsRound(accommodationCost*0.5))

	start, _ := ParseDate(req.StartDate)
	end, _ := ParseDate(req.Deadline)
	startDay := calendarDay(start)
	endDay := calendarDay(end)

	warnings := []string{}
	if req.AvoidNightTravel {
		warnings = append(warnings, daytimeOnlyWarning)
	}

	return generatedPlan{
		PlanName:      fallbackPlanName,
		PlanRationale: fallbackPlanRationale,
		Itinerary: []types.ItineraryDay{
			{
				Day:   1,
				Date:  start.Format(isoTimestamp),
				Theme: "Arrival + local low-impact loop",
				Activities: []string{
					"Use public transport or walkable routes",
					"Local vegetarian or seasonal meal",
					"Community market visit",
				},
				Accommodation: &types.Accommodation{Name: fallbackStayName, EstimatedCostINR: types.Number(nightly)},
			},
			{
				Day:   2,
				Date:  end.Format(isoTimestamp),
				Theme: "Nature + return",
				Activities: []string{
					"Low-emission activity (walk, cycle, or park)",
					"Return using selected transport",
				},
				Accommodation: &types.Accommodation{Name: fallbackStayName, EstimatedCostINR: types.Number(nightly)},
			},
		},
		Plan: []types.TripSegment{
			{
				Mode:          "Outbound",
				Source:        req.From,
				Destination:   req.To,
				Cost:          types.Number(outbound),
				DepartureTime: atHour(startDay, 9).Format(isoTimestamp),
				ArrivalTime:   atHour(startDay, 11).Format(isoTimestamp),
			},
			{
				Mode:          "Return",
				Source:        req.To,
				Destination:   req.From,
				Cost:          types.Number(ret),
				DepartureTime: atHour(endDay, 17).Format(isoTimestamp),
				ArrivalTime:   atHour(endDay, 19).Format(isoTimestamp),
			},
		},
		TotalCostAccommodationActivities: types.Number(accommodationCost),
		Warnings:                         warnings,
	}
}

// buildFallbackTrip applies the fallback's own cost rules: total cost is the
// selected transport only and remaining budget subtracts the stay estimate.
func buildFallbackTrip(req types.TripRequest) types.Trip {
	plan := buildFallbackPlan(req)
	trip := buildTrip(req, plan, types.TripSourceFallback)
	trip.TotalCost = req.TravelSelection.OutboundCost + req.TravelSelection.ReturnCost
	trip.BudgetRemaining = req.Budget - trip.TotalCost - plan.TotalCostAccommodationActivities.Float()
	return trip
}

// jsRound rounds half up, matching the browser client's arithmetic.
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func atHour(day time.Time, hour int) time.Time {
	return day.Add(time.Duration(hour) * time.Hour)
}
