package itinerary

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const planSchema = `[{
  "plan_name": string,
  "plan_rationale": string,
  "itinerary": [
    { "day": number, "date": string, "theme": string, "activities": string[], "accommodation": { "name": string, "estimated_cost_inr": number } }
  ],
  "plan": [
    { "mode": string, "source": string, "destination": string, "cost": number, "departureTime": string, "arrivalTime": string }
  ],
  "total_cost_accommodation_activities": number
}]`

func getTripGenerationPrompt(req types.TripRequest, today time.Time) string {
	sideJSON, err := json.Marshal(req.SideLocations)
	if err != nil {
		sideJSON = []byte("[]")
	}
	sideNames := make([]string, 0, len(req.SideLocations))
	for _, loc := range req.SideLocations {
		sideNames = append(sideNames, loc.Name)
	}

	remaining := "not provided"
	if req.BudgetRemaining != nil {
		remaining = "₹" + formatAmount(*req.BudgetRemaining)
	}

	return fmt.Sprintf(`
Current Date for context: %s
Target Trip: %s to %s
Dates: From %s to %s
Total Budget: ₹%s
Calculated Remaining Budget for Stay/Food: %s

USER PREFERENCES:
    - Side Locations to include: %s
    - Avoid Night Travel: %t
    - Outbound Transport: %s (Cost: ₹%s)
    - Return Transport: %s (Cost: ₹%s)

STRICT INSTRUCTIONS:
    1. Itinerary must include the requested Side Locations (%s) for the specified number of days.
    2. The "plan" array MUST use the exact transport costs and modes provided in the preferences above.
    3. Return ONLY valid JSON as an ARRAY of one plan.
    4. Use ISO-8601 strings for all date fields.
    5. Optimize for eco-friendly travel: prefer low-emission activities, local food, walkability, public transport and minimal waste.
    6. If the provided transport modes are high-emission, mention mitigation tips in plan_rationale (carbon offsets, longer stays, local conservation support).

Schema:
%s
`,
		today.Format("2006-01-02"),
		req.From, req.To,
		req.StartDate, req.Deadline,
		formatAmount(req.Budget),
		remaining,
		sideJSON,
		req.AvoidNightTravel,
		req.TravelSelection.OutboundID, formatAmount(req.TravelSelection.OutboundCost),
		req.TravelSelection.ReturnID, formatAmount(req.TravelSelection.ReturnCost),
		strings.Join(sideNames, ", "),
		planSchema,
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
