package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// Small neighborhood-park sub-types excluded from the catalog: not travel
// destinations.
var excludedParkTypes = []string{
	"소공원", "어린이공원", "쌈지마당", "녹지",
	"완충녹지", "경관녹지", "연결녹지",
}

// MunicipalParkNormalizer handles the bulk municipal-park snapshot. These
// features have no proper names (the Name field is effectively the park
// sub-type), so display names are synthesized as "district type" with a
// running number when a district has several parks of the same type, largest
// first.
type MunicipalParkNormalizer struct {
	minAreaSqm      float64
	priorityAreaSqm float64
}

func NewMunicipalParks(minAreaSqm, priorityAreaSqm float64) *MunicipalParkNormalizer {
	return &MunicipalParkNormalizer{minAreaSqm: minAreaSqm, priorityAreaSqm: priorityAreaSqm}
}

func (n *MunicipalParkNormalizer) Source() domain.Source { return domain.SourcePark }

func (n *MunicipalParkNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats

	type group struct {
		key   string
		parks []domain.Candidate
	}
	var groups []*group
	byKey := make(map[string]*group)

	for _, f := range features {
		parkType := f.Name
		if parkType == "" {
			parkType = "공원"
		}

		if excludedParkType(parkType) {
			drops.Type++
			continue
		}
		if f.AreaSqm < n.minAreaSqm {
			drops.Area++
			continue
		}

		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		key := f.District + "_" + parkType
		g, seen := byKey[key]
		if !seen {
			g = &group{key: key}
			byKey[key] = g
			groups = append(groups, g)
		}

		g.parks = append(g.parks, domain.Candidate{
			SourceID: f.ID,
			RawType:  parkType,
			Location: loc,
			AreaSqm:  f.AreaSqm,
			District: f.District,
			City:     f.City,
			Source:   domain.SourcePark,
		})
	}

	// Name within each group largest-first; groups keep first-appearance
	// order so output order stays a function of input order.
	var cands []domain.Candidate
	for _, g := range groups {
		sort.SliceStable(g.parks, func(i, j int) bool {
			return g.parks[i].AreaSqm > g.parks[j].AreaSqm
		})

		for i := range g.parks {
			p := &g.parks[i]
			if len(g.parks) == 1 {
				p.Name = strings.TrimSpace(p.District + " " + p.RawType)
			} else {
				p.Name = strings.TrimSpace(fmt.Sprintf("%s %s %d", p.District, p.RawType, i+1))
			}
			p.Priority = p.AreaSqm >= n.priorityAreaSqm
			cands = append(cands, *p)
		}
	}

	return cands, drops
}

func excludedParkType(parkType string) bool {
	for _, exc := range excludedParkTypes {
		if strings.Contains(parkType, exc) {
			return true
		}
	}
	return false
}
