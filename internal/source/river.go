package source

import (
	"fmt"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// Major Gyeonggi rivers in the order the national-river snapshot lists its
// features. The snapshot itself ships no names; the feature index is the
// only identity signal.
var riverNames = []string{
	"한강", "임진강", "북한강", "남한강", "경안천",
	"안양천", "중랑천", "탄천", "왕숙천", "공릉천",
	"신천", "곡릉천", "문산천", "사천", "청평천",
	"조종천", "홍천강", "소양강", "섬강", "복하천",
}

// RiverNormalizer handles the national-river snapshot. Names come from the
// fixed ordered list above, indexed by raw feature order (including features
// later dropped for invalid centroids, so a dropped feature does not shift
// the names of those after it).
type RiverNormalizer struct{}

func NewRivers() *RiverNormalizer { return &RiverNormalizer{} }

func (n *RiverNormalizer) Source() domain.Source { return domain.SourceNationalRiver }

func (n *RiverNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats
	cands := make([]domain.Candidate, 0, len(features))

	for i, f := range features {
		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		name := fmt.Sprintf("하천 %d", i+1)
		if i < len(riverNames) {
			name = riverNames[i]
		}

		id := f.ID
		if id == "" {
			id = fmt.Sprintf("river_%d", i)
		}

		cands = append(cands, domain.Candidate{
			SourceID: id,
			Name:     name,
			RawType:  "국가하천",
			Location: loc,
			District: f.District,
			City:     f.City,
			Source:   domain.SourceNationalRiver,
			Priority: true,
		})
	}

	return cands, drops
}
