package source

import (
	"strings"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// facilityTypeByCode maps the zoning remark codes embedded in the facility
// snapshot to a display type. Checked in order; first prefix hit wins.
var facilityTypeByCode = []struct {
	code string
	name string
}{
	{"UQV7", "체육시설"},
	{"UQV2", "문화시설"},
	{"UQV8", "공공시설"},
}

// FacilityNormalizer handles the culture/sports facility snapshot, deriving
// the facility type from remark codes.
type FacilityNormalizer struct{}

func NewFacilities() *FacilityNormalizer { return &FacilityNormalizer{} }

func (n *FacilityNormalizer) Source() domain.Source { return domain.SourceFacility }

func (n *FacilityNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats
	cands := make([]domain.Candidate, 0, len(features))

	for _, f := range features {
		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		facilityType := "문화체육시설"
		for _, m := range facilityTypeByCode {
			if strings.Contains(f.Remark, m.code) {
				facilityType = m.name
				break
			}
		}

		name := f.Alias
		if name == "" {
			name = facilityType
		}

		cands = append(cands, domain.Candidate{
			SourceID: f.ID,
			Name:     name,
			RawType:  facilityType,
			Location: loc,
			District: f.District,
			City:     f.City,
			Source:   domain.SourceFacility,
		})
	}

	return cands, drops
}
