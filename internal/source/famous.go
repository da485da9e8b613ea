package source

import (
	"strings"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// FamousEntry is one row of the manually curated famous-places list. These
// carry literal WGS-84 coordinates rather than projected centroids.
type FamousEntry struct {
	Name     string  `yaml:"name" json:"name"`
	Lat      float64 `yaml:"lat" json:"lat"`
	Lng      float64 `yaml:"lng" json:"lng"`
	District string  `yaml:"district" json:"district"`
	Type     string  `yaml:"type" json:"type"`
	Desc     string  `yaml:"desc" json:"desc"`
}

// NormalizeFamous converts curated entries into candidates. Famous places
// are always priority and always famous, which makes them win merge
// precedence; the pipeline feeds them in first so the coordinate-bucket pass
// also favors them.
func NormalizeFamous(entries []FamousEntry) ([]domain.Candidate, DropStats) {
	var drops DropStats
	cands := make([]domain.Candidate, 0, len(entries))

	for _, e := range entries {
		loc := domain.Geo{Lat: e.Lat, Lng: e.Lng}
		if !loc.Valid() {
			drops.Location++
			continue
		}

		cands = append(cands, domain.Candidate{
			SourceID:    "famous_" + strings.ReplaceAll(e.Name, " ", "_"),
			Name:        e.Name,
			RawType:     e.Type,
			Location:    loc,
			District:    e.District,
			Source:      domain.SourceFamous,
			Priority:    true,
			Famous:      true,
			Description: e.Desc,
		})
	}

	return cands, drops
}
