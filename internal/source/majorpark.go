package source

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// MajorParkNormalizer handles the designated-park snapshots (provincial,
// county, national). These features all carry proper names and a km² area;
// they are inherently well-identified, so every candidate is priority.
type MajorParkNormalizer struct {
	source   domain.Source
	parkType string
}

func NewProvincialParks() *MajorParkNormalizer {
	return &MajorParkNormalizer{source: domain.SourceProvincialPark, parkType: "도립공원"}
}

func NewCountyParks() *MajorParkNormalizer {
	return &MajorParkNormalizer{source: domain.SourceCountyPark, parkType: "군립공원"}
}

func NewNationalParks() *MajorParkNormalizer {
	return &MajorParkNormalizer{source: domain.SourceNationalPark, parkType: "국립공원"}
}

func (n *MajorParkNormalizer) Source() domain.Source { return n.source }

func (n *MajorParkNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
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
			name = n.parkType
		}

		cands = append(cands, domain.Candidate{
			SourceID:       f.ID,
			Name:           name,
			NameEn:         f.Name,
			RawType:        n.parkType,
			Location:       loc,
			AreaSqm:        f.AreaSqkm * 1000000,
			District:       f.District,
			City:           f.City,
			Source:         n.source,
			Priority:       true,
			DesignatedYear: f.DesignatedYear,
		})
	}

	return cands, drops
}
