package source

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// TourSpot is one record of the tourism-API snapshot, already in WGS-84.
type TourSpot struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Location  domain.Geo `json:"location"`
	District  string     `json:"district,omitempty"`
	Address   string     `json:"address,omitempty"`
	Thumbnail string     `json:"thumbnail,omitempty"`
}

// Tourism content types worth cataloging. Restaurants, lodging, and shopping
// rows are dropped as type-excluded.
var tourTypeWhitelist = map[string]bool{
	"관광지":  true,
	"문화시설": true,
	"레포츠":  true,
}

// NormalizeTour converts tourism-API records into candidates for the
// cross-source reconciliation pass. Tour candidates are an enrichment
// source: when one matches an existing spot it contributes name, thumbnail,
// and address per the merge field policy rather than becoming a new spot.
func NormalizeTour(spots []TourSpot) ([]domain.Candidate, DropStats) {
	var drops DropStats
	cands := make([]domain.Candidate, 0, len(spots))

	for _, t := range spots {
		if !tourTypeWhitelist[t.Type] {
			drops.Type++
			continue
		}
		if !t.Location.Valid() {
			drops.Location++
			continue
		}

		cands = append(cands, domain.Candidate{
			SourceID:  t.ID,
			Name:      t.Name,
			RawType:   t.Type,
			Location:  t.Location,
			District:  t.District,
			Source:    domain.SourceTourAPI,
			Address:   t.Address,
			Thumbnail: t.Thumbnail,
		})
	}

	return cands, drops
}
