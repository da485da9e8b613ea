package domain

import (
	"math"
	"strings"
)

// Accessibility has no data source yet; every spot gets the midpoint value
// until a real accessibility model replaces it.
const defaultAccessibility = 50

// Weights are the fixed coefficients combining the four score components.
// They are part of the run configuration so test runs can vary them, but the
// defaults are the published catalog's weights.
type Weights struct {
	Area          float64
	EcoValue      float64
	Accessibility float64
	Uniqueness    float64
}

// DefaultWeights weight ecological value and provenance-uniqueness at 60%
// combined: the catalog surfaces ecologically distinctive destinations, not
// raw size.
func DefaultWeights() Weights {
	return Weights{Area: 0.25, EcoValue: 0.30, Accessibility: 0.15, Uniqueness: 0.30}
}

// Sum returns the total of the four coefficients. A valid configuration
// sums to 1.0.
func (w Weights) Sum() float64 {
	return w.Area + w.EcoValue + w.Accessibility + w.Uniqueness
}

// Total combines the four sub-scores into the composite score. Pure function
// of the sub-scores and the weights.
func (w Weights) Total(s Scores) int {
	return int(math.Round(
		w.Area*float64(s.Area) +
			w.EcoValue*float64(s.EcoValue) +
			w.Accessibility*float64(s.Accessibility) +
			w.Uniqueness*float64(s.Uniqueness),
	))
}

// ScoreSpot computes the travel-worthiness score components for a canonical
// spot. eco supplies the per-district ecological values; a missing district
// match scores 0 there rather than failing.
func ScoreSpot(sp *Spot, eco EcoIndex, w Weights) Scores {
	s := Scores{
		Area:          areaScore(sp.AreaSqm),
		Accessibility: defaultAccessibility,
		Uniqueness:    uniquenessScore(sp.Candidate),
	}

	if v, ok := eco.Value(sp.City, sp.District); ok {
		s.EcoValue = clampScore(int(v))
	}

	s.Total = w.Total(s)
	return s
}

// areaScore maps area to 0–100 on a log curve: 10,000 m² ≈ 50 points,
// 1,000,000 m² ≈ 100. Areas below ~3,000 m² produce negative raw values and
// clamp to 0; absent or zero area scores 0 outright.
func areaScore(areaSqm float64) int {
	if areaSqm <= 0 {
		return 0
	}
	raw := math.Round(25*math.Log10(math.Max(areaSqm, 1)) - 50)
	return clampScore(int(raw))
}

// uniquenessScore tiers a spot by how administratively distinctive its
// provenance is. Highest applicable tier wins.
func uniquenessScore(c Candidate) int {
	if c.Priority {
		return 100
	}
	switch c.Source {
	case SourceProvincialPark, SourceCountyPark, SourceNationalPark:
		return 90
	case SourceLandscape, SourceForestReserve, SourceNationalRiver:
		return 85
	case SourceEcoGrade1:
		return 70
	case SourceWetland:
		return 60
	case SourceGreenArea:
		return 45
	}
	if strings.Contains(c.Name, "자연") || strings.Contains(c.Name, "생태") ||
		strings.Contains(c.RawType, "자연") || strings.Contains(c.RawType, "생태") {
		return 50
	}
	return 30
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
