package emissions

import (
	"math"
	"strings"

	"github.com/FACorreiaa/ecowise-api/internal/types"
)

const (
	defaultSegmentKm    = 120.0
	minEstimatedKm      = 5.0
	assumedSpeedKmPerHr = 60.0
	defaultFactor       = 0.12
	stayKgPerNight      = 1.2
	activitiesKgPerDay  = 0.4
)

type modeFactor struct {
	keywords []string
	kgPerKm  float64
}

// factors is evaluated top to bottom; the first keyword contained in the
// lowercased mode wins.
var factors = []modeFactor{
	{keywords: []string{"rail", "train"}, kgPerKm: 0.04},
	{keywords: []string{"bus"}, kgPerKm: 0.08},
	{keywords: []string{"ev", "electric"}, kgPerKm: 0.05},
	{keywords: []string{"metro", "subway"}, kgPerKm: 0.06},
	{keywords: []string{"car", "taxi"}, kgPerKm: 0.18},
	{keywords: []string{"flight", "air"}, kgPerKm: 0.25},
	{keywords: []string{"walk", "cycle", "bike"}, kgPerKm: 0.0},
}

// FactorFor returns the kg CO2e per km for a transport mode.
func FactorFor(mode string) float64 {
	key := strings.ToLower(strings.TrimSpace(mode))
	for _, f := range factors {
		for _, kw := range f.keywords {
			if strings.Contains(key, kw) {
				return f.kgPerKm
			}
		}
	}
	return defaultFactor
}

// SegmentDistanceKm uses the stated distance, then the duration at an
// assumed road speed, then a flat default.
func SegmentDistanceKm(seg types.TripSegment) float64 {
	if seg.DistanceKm != nil && isFinite(seg.DistanceKm.Float()) {
		return seg.DistanceKm.Float()
	}
	if seg.DurationHrs != nil && isFinite(seg.DurationHrs.Float()) {
		return math.Max(minEstimatedKm, seg.DurationHrs.Float()*assumedSpeedKmPerHr)
	}
	return defaultSegmentKm
}

// Estimate computes the emissions breakdown for a plan.
func Estimate(segments []types.TripSegment, days int) types.Emissions {
	var transport float64
	for _, seg := range segments {
		transport += SegmentDistanceKm(seg) * FactorFor(seg.Mode)
	}

	stay := math.Max(0, float64(days-1)) * stayKgPerNight
	activities := float64(days) * activitiesKgPerDay
	total := transport + stay + activities

	return types.Emissions{
		TransportKg:  round2(transport),
		StayKg:       round2(stay),
		ActivitiesKg: round2(activities),
		TotalKg:      round2(total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
