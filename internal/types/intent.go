package types

// TripPreferences are the boolean probes found in a free-text prompt.
type TripPreferences struct {
	Rail         bool `json:"rail"`
	AvoidFlights bool `json:"avoidFlights"`
	LocalFood    bool `json:"localFood"`
}

// TripIntent is what the prompt extractor could recover from free text.
// Absent values are nil and serialise as null.
type TripIntent struct {
	Origin       *string         `json:"origin"`
	Destination  *string         `json:"destination"`
	DurationDays *int            `json:"durationDays"`
	Budget       *float64        `json:"budget"`
	TravelDate   *string         `json:"travelDate"`
	Preferences  TripPreferences `json:"preferences"`
}

// DateRange holds ISO-8601 start and end timestamps.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// PlanDebug is echoed back to prompt callers to explain extraction.
type PlanDebug struct {
	Extracted TripIntent `json:"extracted"`
	Missing   []string   `json:"missing"`
}
