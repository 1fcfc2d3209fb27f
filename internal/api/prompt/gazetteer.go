package prompt

import (
	"regexp"
	"strings"
)

// knownCities is the ordered gazetteer. Order decides ties: the first city
// found in a fragment wins.
var knownCities = []string{
	"bengaluru",
	"mysuru",
	"delhi",
	"jaipur",
	"mumbai",
	"goa",
	"ooty",
	"chennai",
	"vijayawada",
}

// Gazetteer resolves city names inside lowercased text.
type Gazetteer struct {
	cities    []string
	wholeWord bool
	patterns  []*regexp.Regexp
}

// NewGazetteer builds a gazetteer over the known cities. With wholeWord set a
// city only matches on word boundaries, so "goa" no longer matches "goan".
func NewGazetteer(wholeWord bool) *Gazetteer {
	g := &Gazetteer{cities: knownCities, wholeWord: wholeWord}
	if wholeWord {
		g.patterns = make([]*regexp.Regexp, len(knownCities))
		for i, city := range knownCities {
			g.patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(city) + `\b`)
		}
	}
	return g
}

func (g *Gazetteer) contains(text string, i int) bool {
	if g.wholeWord {
		return g.patterns[i].MatchString(text)
	}
	return strings.Contains(text, g.cities[i])
}

// First returns the first gazetteer city found in text that is not excluded.
func (g *Gazetteer) First(text string, exclude string) (string, bool) {
	for i, city := range g.cities {
		if city == exclude {
			continue
		}
		if g.contains(text, i) {
			return city, true
		}
	}
	return "", false
}

// Cities returns a copy of the gazetteer in lookup order.
func (g *Gazetteer) Cities() []string {
	out := make([]string, len(g.cities))
	copy(out, g.cities)
	return out
}
