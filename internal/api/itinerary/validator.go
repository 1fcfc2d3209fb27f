package itinerary

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps, zone-less timestamps (read as UTC)
// and plain calendar dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ValidateTripRequest checks and coerces a raw generation request. Checks run
// in a fixed order and the first failure is returned.
func ValidateTripRequest(req types.GenerateTripRequest) (types.TripRequest, error) {
	if blank(req.From) || blank(req.To) || blank(req.StartDate) || blank(req.Deadline) || blank(req.UserID) || absent(req.Budget) {
		return types.TripRequest{}, &types.ValidationError{Kind: types.MissingFields}
	}

	if _, ok := ParseDate(req.StartDate); !ok {
		return types.TripRequest{}, &types.ValidationError{Kind: types.InvalidDateFormat}
	}
	if _, ok := ParseDate(req.Deadline); !ok {
		return types.TripRequest{}, &types.ValidationError{Kind: types.InvalidDateFormat}
	}

	budget, ok := coerceNumber(req.Budget)
	if !ok || !finite(budget) || budget <= 0 {
		return types.TripRequest{}, &types.ValidationError{Kind: types.InvalidBudget}
	}

	selection, err := validateTravelSelection(req.TravelSelection)
	if err != nil {
		return types.TripRequest{}, err
	}

	out := types.TripRequest{
		From:             strings.TrimSpace(req.From),
		To:               strings.TrimSpace(req.To),
		StartDate:        strings.TrimSpace(req.StartDate),
		Deadline:         strings.TrimSpace(req.Deadline),
		Budget:           budget,
		UserID:           req.UserID,
		TravelSelection:  selection,
		SideLocations:    sideLocations(req.SideLocations),
		AvoidNightTravel: truthy(req.AvoidNightTravel),
	}
	if remaining, ok := jsonNumber(req.BudgetRemaining); ok {
		out.BudgetRemaining = &remaining
	}
	return out, nil
}

func validateTravelSelection(raw any) (types.TravelSelection, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.TravelSelection{}, &types.ValidationError{Kind: types.MissingTravelSelection}
	}
	outboundID, okOut := identifier(obj["outboundId"])
	returnID, okRet := identifier(obj["returnId"])
	if !okOut || !okRet {
		return types.TravelSelection{}, &types.ValidationError{Kind: types.MissingTravelSelection}
	}

	outboundCost, okOut := coerceNumber(obj["outboundCost"])
	returnCost, okRet := coerceNumber(obj["returnCost"])
	if !okOut || !okRet || !finite(outboundCost) || !finite(returnCost) {
		return types.TravelSelection{}, &types.ValidationError{Kind: types.InvalidTravelCosts}
	}

	return types.TravelSelection{
		OutboundID:   outboundID,
		ReturnID:     returnID,
		OutboundCost: outboundCost,
		ReturnCost:   returnCost,
	}, nil
}

// coerceNumber treats absent and empty values as zero and parses numeric
// strings. The second result is false for values that are not numbers.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// jsonNumber only accepts values that arrived as JSON numbers.
func jsonNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, finite(n)
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil && finite(f)
	}
	return 0, false
}

func identifier(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, strings.TrimSpace(id) != ""
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), id != 0
	case int:
		return strconv.Itoa(id), id != 0
	case bool:
		if !id {
			return "", false
		}
		return "true", true
	case nil:
		return "", false
	}
	s := fmt.Sprint(v)
	return s, s != ""
}

func sideLocations(v any) []types.SideLocation {
	list, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]types.SideLocation); ok {
			return typed
		}
		return []types.SideLocation{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return []types.SideLocation{}
	}
	var out []types.SideLocation
	if err := json.Unmarshal(raw, &out); err != nil {
		return []types.SideLocation{}
	}
	return out
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case float64:
		return b != 0 && !math.IsNaN(b)
	case int:
		return b != 0
	}
	return true
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func absent(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
