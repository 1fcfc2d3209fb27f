package prompt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

var (
	currencyBudgetRe = regexp.MustCompile(`₹\s*(\d+(?:\.\d+)?)(k)?`)
	underBudgetRe    = regexp.MustCompile(`under\s*(\d+(?:\.\d+)?)(k)?`)
	durationRe       = regexp.MustCompile(`(\d+)\s*[-\s]?\s*(day|days|night|nights)`)
	fromFragmentRe   = regexp.MustCompile(`from\s+([a-z\s]+)`)
	toFragmentRe     = regexp.MustCompile(`to\s+([a-z\s]+)`)
	travelDateRe     = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)?\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec|january|february|march|april|june|july|august|september|october|november|december)`)
)

type preferenceProbe struct {
	pattern *regexp.Regexp
	set     func(p *types.TripPreferences)
}

var preferenceProbes = []preferenceProbe{
	{regexp.MustCompile(`rail|train`), func(p *types.TripPreferences) { p.Rail = true }},
	{regexp.MustCompile(`avoid\s*flights|no\s*flight`), func(p *types.TripPreferences) { p.AvoidFlights = true }},
	{regexp.MustCompile(`local\s*food|street\s*food|veg|vegetarian`), func(p *types.TripPreferences) { p.LocalFood = true }},
}

// Extractor turns free text into a TripIntent. It never fails; what it
// cannot find is reported through the missing list.
type Extractor struct {
	gazetteer *Gazetteer
}

func NewExtractor(gazetteer *Gazetteer) *Extractor {
	if gazetteer == nil {
		gazetteer = NewGazetteer(false)
	}
	return &Extractor{gazetteer: gazetteer}
}

// Extract parses text and returns the intent plus the names of the fields it
// could not recover, in a fixed order.
func (e *Extractor) Extract(text string) (types.TripIntent, []string) {
	lower := strings.ToLower(text)

	var intent types.TripIntent
	intent.Origin, intent.Destination = e.route(lower)
	intent.DurationDays = extractDuration(lower)
	intent.Budget = extractBudget(lower)
	intent.TravelDate = extractTravelDate(lower)
	for _, probe := range preferenceProbes {
		if probe.pattern.MatchString(lower) {
			probe.set(&intent.Preferences)
		}
	}

	return intent, Missing(intent)
}

// Missing lists unresolved intent fields in reporting order.
func Missing(intent types.TripIntent) []string {
	missing := make([]string, 0, 6)
	if intent.Origin == nil {
		missing = append(missing, "origin")
	}
	if intent.Destination == nil {
		missing = append(missing, "destination")
	}
	if intent.DurationDays == nil {
		missing = append(missing, "duration")
	}
	if intent.Budget == nil {
		missing = append(missing, "budget")
	}
	if intent.TravelDate == nil {
		missing = append(missing, "date")
	}
	p := intent.Preferences
	if !p.Rail && !p.AvoidFlights && !p.LocalFood {
		missing = append(missing, "preferences")
	}
	return missing
}

func (e *Extractor) route(lower string) (*string, *string) {
	var origin, destination string

	if m := fromFragmentRe.FindStringSubmatch(lower); m != nil {
		origin, _ = e.gazetteer.First(m[1], "")
	}
	if m := toFragmentRe.FindStringSubmatch(lower); m != nil {
		destination, _ = e.gazetteer.First(m[1], "")
	}
	if origin == "" {
		origin, _ = e.gazetteer.First(lower, "")
	}
	if destination == "" {
		destination, _ = e.gazetteer.First(lower, origin)
	}

	return optional(origin), optional(destination)
}

func extractBudget(lower string) *float64 {
	for _, re := range []*regexp.Regexp{currencyBudgetRe, underBudgetRe} {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		if m[2] != "" {
			value *= 1000
		}
		if value <= 0 {
			return nil
		}
		return &value
	}
	return nil
}

func extractDuration(lower string) *int {
	m := durationRe.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days <= 0 {
		return nil
	}
	return &days
}

func extractTravelDate(lower string) *string {
	m := travelDateRe.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	date := m[1] + " " + m[3]
	return &date
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
