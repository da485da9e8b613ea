package source

import (
	"fmt"
	"strings"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

var greenTypeByCode = []struct {
	code string
	name string
}{
	{"UQA42", "완충녹지"},
	{"UQA41", "경관녹지"},
	{"UQA43", "연결녹지"},
}

// GreenAreaNormalizer handles the green-area snapshot. Type comes from the
// zoning remark code, names fall back to a numbered synthetic, and the
// high-volume output is capped.
type GreenAreaNormalizer struct {
	maxRecords int
}

func NewGreenAreas(maxRecords int) *GreenAreaNormalizer {
	return &GreenAreaNormalizer{maxRecords: maxRecords}
}

func (n *GreenAreaNormalizer) Source() domain.Source { return domain.SourceGreenArea }

func (n *GreenAreaNormalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats
	var cands []domain.Candidate

	for i, f := range features {
		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		greenType := "녹지"
		for _, m := range greenTypeByCode {
			if strings.Contains(f.Remark, m.code) {
				greenType = m.name
				break
			}
		}

		name := f.Alias
		if name == "" {
			name = fmt.Sprintf("%s %d", greenType, i+1)
		}

		cands = append(cands, domain.Candidate{
			SourceID: f.ID,
			Name:     name,
			RawType:  greenType,
			Location: loc,
			AreaSqm:  f.AreaSqm,
			District: f.District,
			City:     f.City,
			Source:   domain.SourceGreenArea,
		})

		if n.maxRecords > 0 && len(cands) >= n.maxRecords {
			break
		}
	}

	return cands, drops
}
