package source

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// WetlandNormalizer handles the rice-field wetland snapshot. The snapshot is
// high-volume and mostly anonymous paddies, so it is capped; names fall back
// through the sub/medium classification fields.
type WetlandNormalizer struct {
	minAreaSqm float64
	maxRecords int
}

func NewWetlands(minAreaSqm float64, maxRecords int) *WetlandNormalizer {
	return &WetlandNormalizer{minAreaSqm: minAreaSqm, maxRecords: maxRecords}
}

func (n *WetlandNormalizer) Source() domain.Source { return domain.SourceWetland }

func (n *WetlandNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats
	var cands []domain.Candidate

	for _, f := range features {
		if f.AreaSqm < n.minAreaSqm {
			drops.Area++
			continue
		}

		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		name := f.TypeSmall
		if name == "" {
			name = f.TypeMedium
		}
		if name == "" {
			name = "습지"
		}

		cands = append(cands, domain.Candidate{
			SourceID: f.ID,
			Name:     name,
			RawType:  "습지",
			Location: loc,
			AreaSqm:  f.AreaSqm,
			District: f.District,
			City:     f.City,
			Source:   domain.SourceWetland,
		})

		if n.maxRecords > 0 && len(cands) >= n.maxRecords {
			break
		}
	}

	return cands, drops
}
