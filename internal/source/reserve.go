package source

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// ReserveNormalizer handles the protected-zone snapshots (landscape reserves
// and forest genetic resource reserves). Both share a schema: named features
// with a km² area, always priority.
type ReserveNormalizer struct {
	source      domain.Source
	rawType     string
	defaultName string
}

func NewLandscapeReserves() *ReserveNormalizer {
	return &ReserveNormalizer{
		source:      domain.SourceLandscape,
		rawType:     "경관보호지역",
		defaultName: "경관보호지역",
	}
}

func NewForestReserves() *ReserveNormalizer {
	return &ReserveNormalizer{
		source:      domain.SourceForestReserve,
		rawType:     "산림보호구역",
		defaultName: "산림유전자원보호구역",
	}
}

func (n *ReserveNormalizer) Source() domain.Source { return n.source }

func (n *ReserveNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats
	cands := make([]domain.Candidate, 0, len(features))

	for _, f := range features {
		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		name := f.NameKr
		if name == "" {
			name = f.Name
		}
		if name == "" {
			name = n.defaultName
		}

		cands = append(cands, domain.Candidate{
			SourceID: f.ID,
			Name:     name,
			NameEn:   f.Name,
			RawType:  n.rawType,
			Location: loc,
			AreaSqm:  f.AreaSqkm * 1000000,
			District: f.District,
			City:     f.City,
			Source:   n.source,
			Priority: true,
		})
	}

	return cands, drops
}
