// Package catalog writes the run's output views to the JSON files consumed
// by the map frontend.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/greenmaru/spot-catalog-etl/internal/output"
)

type allSpotsDoc struct {
	GeneratedAt   time.Time               `json:"generated_at"`
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
	GeneratedAt time.Time      `json:"generated_at"`
	Description string         `json:"description"`
	Count       int            `json:"count"`
	Spots       []*domain.Spot `json:"spots"`
}

// WriteViews writes the full catalog, one file per category with at least
// one member, and the high-score shortlist under dir, creating it if
// needed.
func WriteViews(dir string, views output.Views) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	all := allSpotsDoc{
		GeneratedAt:   views.GeneratedAt,
		TotalCount:    len(views.Full),
		CategoryStats: views.CategoryCounts,
		Spots:         views.Full,
	}
	if err := writeJSON(filepath.Join(dir, "all_spots.json"), all); err != nil {
		return err
	}

	for _, cat := range domain.Categories {
		spots := views.ByCategory[cat]
		if len(spots) == 0 {
			continue
		}
		doc := categoryDoc{Category: cat, Count: len(spots), Spots: spots}
		name := fmt.Sprintf("spots_%s.json", cat)
		if err := writeJSON(filepath.Join(dir, name), doc); err != nil {
			return err
		}
	}

	top := topSpotsDoc{
		GeneratedAt: views.GeneratedAt,
		Description: "경기도 고득점 여행지 목록",
		Count:       len(views.Top),
		Spots:       views.Top,
	}
	return writeJSON(filepath.Join(dir, "top_spots.json"), top)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
