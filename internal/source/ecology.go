package source

import (
	"fmt"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// EcoGrade1Normalizer handles the ecology-grade-1 management area snapshot.
// These zones are anonymous polygons, so names are synthesized by running
// number. The snapshot contains thousands of fragments; only the head of the
// file is scanned and the output is capped.
type EcoGrade1Normalizer struct {
	scanLimit  int
	maxRecords int
}

func NewEcoGrade1(scanLimit, maxRecords int) *EcoGrade1Normalizer {
	return &EcoGrade1Normalizer{scanLimit: scanLimit, maxRecords: maxRecords}
}

func (n *EcoGrade1Normalizer) Source() domain.Source { return domain.SourceEcoGrade1 }

func (n *EcoGrade1Normalizer) Normalize(features []Feature) ([]domain.Candidate, DropStats) {
	var drops DropStats
	var cands []domain.Candidate

	limit := len(features)
	if n.scanLimit > 0 && limit > n.scanLimit {
		limit = n.scanLimit
	}

	for i, f := range features[:limit] {
		loc, ok := project(f.Center, &drops)
		if !ok {
			continue
		}

		cands = append(cands, domain.Candidate{
			SourceID: f.ID,
			Name:     fmt.Sprintf("생태자연도 1등급 구역 %d", i+1),
			RawType:  "생태보호구역",
			Location: loc,
			District: f.District,
			City:     f.City,
			Source:   domain.SourceEcoGrade1,
		})

		if n.maxRecords > 0 && len(cands) >= n.maxRecords {
			break
		}
	}

	return cands, drops
}
