package types

import "time"

// TripSource records which generator produced a stored trip.
type TripSource string

const (
	TripSourceLLM      TripSource = "llm"
	TripSourceFallback TripSource = "fallback"
	TripSourceDemo     TripSource = "demo"
)

type TripSegment struct {
	Mode          string   `json:"mode"`
	Source        string   `json:"source"`
	Destination   string   `json:"destination"`
	ServiceNumber string   `json:"serviceNumber,omitempty"`
	DepartureTime string   `json:"departureTime,omitempty"`
	ArrivalTime   string   `json:"arrivalTime,omitempty"`
	Cost          Number   `json:"cost"`
	DurationHrs   *Number  `json:"durationHrs,omitempty"`
	DistanceKm    *Number  `json:"distanceKm,omitempty"`
	Layover       string   `json:"layover,omitempty"`
	BufferMins    *Number  `json:"bufferMins,omitempty"`
	BufferNote    string   `json:"bufferNote,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

type Accommodation struct {
	Name             string `json:"name"`
	EstimatedCostINR Number `json:"estimated_cost_inr"`
	Location         string `json:"location,omitempty"`
	BookingLink      string `json:"booking_link,omitempty"`
}

type ItineraryDay struct {
	Day           int            `json:"day"`
	Date          string         `json:"date"`
	Theme         string         `json:"theme"`
	Activities    []string       `json:"activities"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
}

// Emissions is derived from a trip's segments and itinerary length, in kg CO2e.
type Emissions struct {
	TransportKg  float64 `json:"transportKg"`
	StayKg       float64 `json:"stayKg"`
	ActivitiesKg float64 `json:"activitiesKg"`
	TotalKg      float64 `json:"totalKg"`
}

type TravelSelection struct {
	OutboundID   string  `json:"outboundId"`
	ReturnID     string  `json:"returnId"`
	OutboundCost float64 `json:"outboundCost"`
	ReturnCost   float64 `json:"returnCost"`
}

type SideLocation struct {
	Name   string  `json:"name"`
	Days   Number  `json:"days"`
	Budget *Number `json:"budget,omitempty"`
}

// Trip is the persisted aggregate. TotalCost and Emissions are always
// computed server side.
type Trip struct {
	ID                               string          `json:"_id"`
	From                             string          `json:"from"`
	To                               string          `json:"to"`
	StartDate                        string          `json:"startDate"`
	Deadline                         string          `json:"deadline"`
	Budget                           float64         `json:"budget"`
	UserID                           string          `json:"userID"`
	PlanName                         string          `json:"plan_name"`
	PlanRationale                    string          `json:"plan_rationale"`
	Itinerary                        []ItineraryDay  `json:"itinerary"`
	Plan                             []TripSegment   `json:"plan"`
	TotalCostAccommodationActivities float64         `json:"total_cost_accommodation_activities"`
	TotalCost                        float64         `json:"totalCost"`
	BudgetRemaining                  float64         `json:"budgetRemaining"`
	TravelSelection                  TravelSelection `json:"travelSelection"`
	SideLocations                    []SideLocation  `json:"sideLocations"`
	Warnings                         []string        `json:"warnings"`
	Emissions                        Emissions       `json:"emissions"`
	Source                           TripSource      `json:"source"`
	CreatedAt                        time.Time       `json:"createdAt"`
}

// GenerateTripRequest is the raw body of a trip generation call. Loosely
// typed fields are coerced by the itinerary validator.
type GenerateTripRequest struct {
	From             string `json:"from"`
	To               string `json:"to"`
	StartDate        string `json:"startDate"`
	Deadline         string `json:"deadline"`
	Budget           any    `json:"budget"`
	UserID           string `json:"userID"`
	TravelSelection  any    `json:"travelSelection"`
	BudgetRemaining  any    `json:"budgetRemaining,omitempty"`
	SideLocations    any    `json:"sideLocations,omitempty"`
	AvoidNightTravel any    `json:"avoidNightTravel,omitempty"`
}

// TripRequest is a GenerateTripRequest after validation and coercion.
type TripRequest struct {
	From             string
	To               string
	StartDate        string
	Deadline         string
	Budget           float64
	UserID           string
	TravelSelection  TravelSelection
	BudgetRemaining  *float64
	SideLocations    []SideLocation
	AvoidNightTravel bool
}
