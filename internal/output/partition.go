// Package output arranges scored spots into the views the catalog writers
// consume.
package output

import (
	"sort"
	"time"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

// Views is a run's complete output: the full ranked list, per-category
// slices, and the high-score shortlist. All slices share the same backing
// spots, ordered by total score descending.
type Views struct {
	GeneratedAt    time.Time
	Full           []*domain.Spot
	ByCategory     map[domain.Category][]*domain.Spot
	Top            []*domain.Spot
	CategoryCounts map[domain.Category]int
}

// Partition ranks spots by total score and slices them into views. Ties
// keep their input order, and the input slice is not modified. Spots
// scoring at or above topCutoff land in the shortlist.
func Partition(spots []*domain.Spot, topCutoff int) Views {
	ranked := make([]*domain.Spot, len(spots))
	copy(ranked, spots)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Total > ranked[j].Scores.Total
	})

	v := Views{
		GeneratedAt:    domain.Now(),
		Full:           ranked,
		ByCategory:     make(map[domain.Category][]*domain.Spot),
		CategoryCounts: make(map[domain.Category]int),
	}

	for _, sp := range ranked {
		v.ByCategory[sp.Category] = append(v.ByCategory[sp.Category], sp)
		v.CategoryCounts[sp.Category]++
		if sp.Scores.Total >= topCutoff {
			v.Top = append(v.Top, sp)
		}
	}

	return v
}
