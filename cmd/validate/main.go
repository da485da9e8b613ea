// Command validate performs integrity checks over a run's output files: the
// full catalog, the per-category files, and the high-score shortlist. It
// verifies coordinate bounds, score ranges, view consistency, and that no
// two spots sit closer than the merge radius should allow.
//
// Usage:
//
//	go run ./cmd/validate -output-dir output -cutoff 50
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/geo/s2"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

const earthRadiusM = 6371000.0

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

type allSpotsDoc struct {
	TotalCount    int                     `json:"total_count"`
	CategoryStats map[domain.Category]int `json:"category_stats"`
	Spots         []*domain.Spot          `json:"spots"`
}

type categoryDoc struct {
	Category domain.Category `json:"category"`
	Count    int             `json:"count"`
	Spots    []*domain.Spot  `json:"spots"`
}

type topSpotsDoc struct {
	Count int            `json:"count"`
	Spots []*domain.Spot `json:"spots"`
}

func main() {
	outputDir := flag.String("output-dir", "output", "directory containing catalog output files")
	cutoff := flag.Int("cutoff", 50, "minimum total score expected in the shortlist")
	sameSourceRadius := flag.Float64("same-source-radius", 100, "same-source merge radius in meters")
	flag.Parse()

	all, err := loadAll(*outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}

	phases := []*phase{
		validateSpots(all.Spots),
		validateCounts(all),
		validateCategories(*outputDir, all),
		validateTop(*outputDir, *cutoff, all),
		validateProximity(all.Spots, *sameSourceRadius),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  %s\n", e)
		}
	}

	fmt.Printf("\n%d/%d phases passed\n", len(phases)-failed, len(phases))
	if failed > 0 {
		os.Exit(1)
	}
}

func loadAll(dir string) (allSpotsDoc, error) {
	var doc allSpotsDoc
	err := readJSON(filepath.Join(dir, "all_spots.json"), &doc)
	return doc, err
}

// validateSpots checks per-record invariants on the full catalog.
func validateSpots(spots []*domain.Spot) *phase {
	p := &phase{name: "spot invariants"}

	validCategories := make(map[domain.Category]bool, len(domain.Categories))
	for _, c := range domain.Categories {
		validCategories[c] = true
	}

	seen := make(map[string]bool, len(spots))
	for _, sp := range spots {
		if sp.Name == "" {
			p.errorf("spot %s has no name", sp.SourceID)
		}
		if !sp.Location.Valid() {
			p.errorf("spot %s outside service bounds: %.5f, %.5f", sp.SourceID, sp.Location.Lat, sp.Location.Lng)
		}
		if !validCategories[sp.Category] {
			p.errorf("spot %s has unknown category %q", sp.SourceID, sp.Category)
		}
		for label, v := range map[string]int{
			"area":          sp.Scores.Area,
			"eco_value":     sp.Scores.EcoValue,
			"accessibility": sp.Scores.Accessibility,
			"uniqueness":    sp.Scores.Uniqueness,
			"total":         sp.Scores.Total,
		} {
			if v < 0 || v > 100 {
				p.errorf("spot %s score %s out of range: %d", sp.SourceID, label, v)
			}
		}
		if seen[sp.SourceID] {
			p.errorf("duplicate source id %s", sp.SourceID)
		}
		seen[sp.SourceID] = true
	}
	return p
}

// validateCounts checks that the header counts match the spot list.
func validateCounts(all allSpotsDoc) *phase {
	p := &phase{name: "count consistency"}

	if all.TotalCount != len(all.Spots) {
		p.errorf("total_count %d != %d spots", all.TotalCount, len(all.Spots))
	}

	counts := make(map[domain.Category]int)
	for _, sp := range all.Spots {
		counts[sp.Category]++
	}
	for cat, n := range counts {
		if all.CategoryStats[cat] != n {
			p.errorf("category_stats[%s] = %d, catalog has %d", cat, all.CategoryStats[cat], n)
		}
	}
	return p
}

// validateCategories cross-checks every per-category file against the full
// catalog.
func validateCategories(dir string, all allSpotsDoc) *phase {
	p := &phase{name: "category views"}

	inCatalog := make(map[string]domain.Category, len(all.Spots))
	members := make(map[domain.Category]int)
	for _, sp := range all.Spots {
		inCatalog[sp.SourceID] = sp.Category
		members[sp.Category]++
	}

	total := 0
	for _, cat := range domain.Categories {
		path := filepath.Join(dir, fmt.Sprintf("spots_%s.json", cat))
		// memberless categories are not written
		if members[cat] == 0 {
			if _, err := os.Stat(path); err == nil {
				p.errorf("%s exists but the catalog has no %s spots", path, cat)
			}
			continue
		}
		var doc categoryDoc
		if err := readJSON(path, &doc); err != nil {
			p.errorf("read %s: %v", path, err)
			continue
		}
		if doc.Category != cat {
			p.errorf("%s declares category %q", path, doc.Category)
		}
		if doc.Count != len(doc.Spots) {
			p.errorf("%s count %d != %d spots", path, doc.Count, len(doc.Spots))
		}
		for _, sp := range doc.Spots {
			if got, ok := inCatalog[sp.SourceID]; !ok {
				p.errorf("%s: spot %s not in full catalog", path, sp.SourceID)
			} else if got != cat {
				p.errorf("%s: spot %s is %q in full catalog", path, sp.SourceID, got)
			}
		}
		total += len(doc.Spots)
	}

	if total != len(all.Spots) {
		p.errorf("category files hold %d spots, catalog has %d", total, len(all.Spots))
	}
	return p
}

// validateTop checks the shortlist honors the score cutoff and ranking.
func validateTop(dir string, cutoff int, all allSpotsDoc) *phase {
	p := &phase{name: "shortlist"}

	var doc topSpotsDoc
	path := filepath.Join(dir, "top_spots.json")
	if err := readJSON(path, &doc); err != nil {
		p.errorf("read %s: %v", path, err)
		return p
	}

	if doc.Count != len(doc.Spots) {
		p.errorf("count %d != %d spots", doc.Count, len(doc.Spots))
	}

	expected := 0
	for _, sp := range all.Spots {
		if sp.Scores.Total >= cutoff {
			expected++
		}
	}
	if len(doc.Spots) != expected {
		p.errorf("shortlist holds %d spots, %d score >= %d", len(doc.Spots), expected, cutoff)
	}

	for i, sp := range doc.Spots {
		if sp.Scores.Total < cutoff {
			p.errorf("spot %s below cutoff: %d", sp.SourceID, sp.Scores.Total)
		}
		if i > 0 && sp.Scores.Total > doc.Spots[i-1].Scores.Total {
			p.errorf("shortlist not sorted at %s", sp.SourceID)
		}
	}
	return p
}

// validateProximity verifies the merge held: no two same-source spots
// within the merge radius.
func validateProximity(spots []*domain.Spot, radiusM float64) *phase {
	p := &phase{name: "merge proximity"}

	for i := 0; i < len(spots); i++ {
		for j := i + 1; j < len(spots); j++ {
			if spots[i].Source != spots[j].Source {
				continue
			}
			if d := distanceM(spots[i].Location, spots[j].Location); d < radiusM {
				p.errorf("%s and %s are %.0fm apart (same source %s)",
					spots[i].SourceID, spots[j].SourceID, d, spots[i].Source)
			}
		}
	}
	return p
}

func distanceM(a, b domain.Geo) float64 {
	la := s2.LatLngFromDegrees(a.Lat, a.Lng)
	lb := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return la.Distance(lb).Radians() * earthRadiusM
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
