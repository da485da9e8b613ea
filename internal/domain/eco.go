package domain

// EcoScores is a per-district bundle of ecosystem service indicators,
// supplied externally and joined onto canonical spots by administrative name.
// Loaded once per run and never mutated.
type EcoScores struct {
	TempReduction  float64 `json:"temp_reduction"`
	CarbonStorage  float64 `json:"carbon_storage"`
	CarbonAbsorb   float64 `json:"carbon_absorb"`
	AirQuality     float64 `json:"air_quality"`
	WaterQuality   float64 `json:"water_quality"`
	Biodiversity   float64 `json:"biodiversity"`
	HabitatQuality float64 `json:"habitat_quality"`
	Total          float64 `json:"total_score"`
}

// Fields returns the indicators in declaration order, Total last.
func (s EcoScores) Fields() [8]float64 {
	return [8]float64{
		s.TempReduction, s.CarbonStorage, s.CarbonAbsorb, s.AirQuality,
		s.WaterQuality, s.Biodiversity, s.HabitatQuality, s.Total,
	}
}

// EcoIndex maps "{city}_{district}" (or bare city/district) keys to their
// indicator sets.
type EcoIndex map[string]EcoScores

// Value returns the total indicator score for scoring purposes, trying the
// composite "{city}_{district}" key, then the city alone, then the district
// alone. First hit wins; ok is false when nothing matches.
func (idx EcoIndex) Value(city, district string) (float64, bool) {
	keys := make([]string, 0, 3)
	if city != "" && district != "" {
		keys = append(keys, city+"_"+district)
	}
	if city != "" {
		keys = append(keys, city)
	}
	if district != "" {
		keys = append(keys, district)
	}
	for _, k := range keys {
		if s, ok := idx[k]; ok {
			return s.Total, true
		}
	}
	return 0, false
}
