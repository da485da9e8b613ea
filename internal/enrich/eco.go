// Package enrich joins spots to the ecosystem-service score index.
//
// District naming is inconsistent across the snapshots, so the join runs a
// chain of increasingly lenient strategies: exact key lookup, substring
// containment, containment after stripping administrative suffixes, and
// finally an average over the records whose key contains the stripped
// district name. The first strategy to match wins; a district matching no
// key leaves the spot without eco scores.
package enrich

import (
	"math"
	"sort"
	"strings"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// Strategy is one attempt at resolving a spot's district against the index.
type Strategy interface {
	Match(city, district string, idx domain.EcoIndex) (domain.EcoScores, bool)
}

// DefaultStrategies returns the lookup chain in lenient-last order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		ExactKey{},
		SubstringKey{},
		NormalizedSubstring{},
		NormalizedAverage{},
	}
}

// Enricher attaches eco scores to spots using a strategy chain.
type Enricher struct {
	idx        domain.EcoIndex
	strategies []Strategy
}

func New(idx domain.EcoIndex) *Enricher {
	return &Enricher{idx: idx, strategies: DefaultStrategies()}
}

// Enrich resolves and attaches eco scores for sp, returning true on a
// match. Spots that already carry eco scores are left alone.
func (e *Enricher) Enrich(sp *domain.Spot) bool {
	if sp.EcoScores != nil {
		return true
	}
	if sp.District == "" && sp.City == "" {
		return false
	}

	for _, s := range e.strategies {
		if scores, ok := s.Match(sp.City, sp.District, e.idx); ok {
			sp.EcoScores = &scores
			return true
		}
	}
	return false
}

// ExactKey tries the composite city_district key, then the bare city and
// district names.
type ExactKey struct{}

func (ExactKey) Match(city, district string, idx domain.EcoIndex) (domain.EcoScores, bool) {
	if city != "" && district != "" {
		if s, ok := idx[city+"_"+district]; ok {
			return s, true
		}
	}
	for _, key := range []string{city, district} {
		if key == "" {
			continue
		}
		if s, ok := idx[key]; ok {
			return s, true
		}
	}
	return domain.EcoScores{}, false
}

// SubstringKey matches any index key containing the district name. Keys are
// scanned in sorted order so ties resolve the same way every run.
type SubstringKey struct{}

func (SubstringKey) Match(city, district string, idx domain.EcoIndex) (domain.EcoScores, bool) {
	for _, name := range []string{district, city} {
		if name == "" {
			continue
		}
		for _, key := range sortedKeys(idx) {
			if strings.Contains(key, name) {
				return idx[key], true
			}
		}
	}
	return domain.EcoScores{}, false
}

// NormalizedSubstring retries containment with the 시/군 suffixes removed
// from both sides, catching pairs like 수원 vs 수원시.
type NormalizedSubstring struct{}

func (NormalizedSubstring) Match(city, district string, idx domain.EcoIndex) (domain.EcoScores, bool) {
	for _, name := range []string{district, city} {
		n := stripSuffix(name)
		if n == "" {
			continue
		}
		for _, key := range sortedKeys(idx) {
			k := stripSuffix(key)
			if k == "" {
				continue
			}
			if strings.Contains(k, n) || strings.Contains(n, k) {
				return idx[key], true
			}
		}
	}
	return domain.EcoScores{}, false
}

// NormalizedAverage is the terminal fallback: the per-field mean over every
// record whose key contains the suffix-stripped district name, rounded to
// one decimal. Zero fields are excluded from each mean so sparse districts
// do not drag it down. A district matching no key gets nothing.
type NormalizedAverage struct{}

func (NormalizedAverage) Match(city, district string, idx domain.EcoIndex) (domain.EcoScores, bool) {
	for _, name := range []string{district, city} {
		n := stripSuffix(name)
		if n == "" {
			continue
		}

		var sums [8]float64
		var counts [8]int
		matched := false
		for _, key := range sortedKeys(idx) {
			if !strings.Contains(key, n) {
				continue
			}
			matched = true
			for i, v := range idx[key].Fields() {
				if v > 0 {
					sums[i] += v
					counts[i]++
				}
			}
		}
		if !matched {
			continue
		}

		var vals [8]float64
		for i := range sums {
			if counts[i] > 0 {
				vals[i] = math.Round(sums[i]/float64(counts[i])*10) / 10
			}
		}

		return domain.EcoScores{
			TempReduction:  vals[0],
			CarbonStorage:  vals[1],
			CarbonAbsorb:   vals[2],
			AirQuality:     vals[3],
			WaterQuality:   vals[4],
			Biodiversity:   vals[5],
			HabitatQuality: vals[6],
			Total:          vals[7],
		}, true
	}
	return domain.EcoScores{}, false
}

func stripSuffix(name string) string {
	name = strings.ReplaceAll(name, "시", "")
	return strings.ReplaceAll(name, "군", "")
}

func sortedKeys(idx domain.EcoIndex) []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
