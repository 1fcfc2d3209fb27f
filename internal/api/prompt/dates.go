package prompt

import (
	"strconv"
	"strings"
	"time"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

// ISOTimestamp matches the millisecond UTC layout browser clients produce.
const ISOTimestamp = "2006-01-02T15:04:05.000Z"

var monthTokens = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// BuildTripDates resolves a "<day> <month>" token in the year of now and
// spans durationDays from it. It returns nil when either input is missing or
// the token does not name a real calendar day.
func BuildTripDates(travelDate *string, durationDays *int, now time.Time) *types.DateRange {
	if travelDate == nil || durationDays == nil {
		return nil
	}

	start, ok := parseDayMonth(*travelDate, now.Year())
	if !ok {
		return nil
	}
	end := start.AddDate(0, 0, max(0, *durationDays-1))

	return &types.DateRange{
		StartDate: start.Format(ISOTimestamp),
		EndDate:   end.Format(ISOTimestamp),
	}
}

func parseDayMonth(token string, year int) (time.Time, bool) {
	fields := strings.Fields(strings.ToLower(token))
	if len(fields) != 2 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthTokens[fields[1]]
	if !ok {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 31 feb into march; reject instead.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
