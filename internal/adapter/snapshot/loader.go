// Package snapshot loads the processed source files a run consumes: the
// per-source feature snapshots, the ecosystem-service index, the curated
// famous-spot list, the tour-API export, and optionally a prior catalog.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/greenmaru/spot-catalog-etl/internal/config"
	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/greenmaru/spot-catalog-etl/internal/pipeline"
	"github.com/greenmaru/spot-catalog-etl/internal/source"
)

// ErrCatalogMissing marks a configured prior catalog that could not be
// loaded. Running without the catalog would emit a full set that duplicates
// it downstream, so this is fatal rather than a skip.
var ErrCatalogMissing = errors.New("prior catalog unavailable")

// snapshotFiles maps each source to its file name under the data directory.
var snapshotFiles = map[domain.Source]string{
	domain.SourcePark:           "park.json",
	domain.SourceProvincialPark: "provincial_park.json",
	domain.SourceCountyPark:     "county_park.json",
	domain.SourceNationalPark:   "national_park.json",
	domain.SourceNationalRiver:  "ntn_rvr.json",
	domain.SourceWetland:        "ricefld_wetln.json",
	domain.SourceFacility:       "culture_sports_facility.json",
	domain.SourceEcoGrade1:      "eco1_mgmt_area.json",
	domain.SourceLandscape:      "landscape.json",
	domain.SourceForestReserve:  "forest_genetic_resource.json",
	domain.SourceGreenArea:      "green_area.json",
}

const ecoSnapshotFile = "ecosys_srvc_scr.json"

// ecoRecord is one district row of the ecosystem-service snapshot.
type ecoRecord struct {
	City     string           `json:"city"`
	District string           `json:"district"`
	Scores   domain.EcoScores `json:"scores"`
}

// LoadInputs reads everything under cfg's paths. Individual source
// snapshots that are missing or unreadable are skipped with a warning;
// a configured-but-unloadable catalog is an error.
func LoadInputs(cfg *config.Config, logger *slog.Logger) (pipeline.Inputs, error) {
	in := pipeline.Inputs{
		Snapshots: make(map[domain.Source]source.Snapshot),
	}

	for src, name := range snapshotFiles {
		path := filepath.Join(cfg.DataDir, name)
		var snap source.Snapshot
		if err := readJSON(path, &snap); err != nil {
			logger.Warn("source snapshot unavailable", "source", src, "path", path, "error", err)
			continue
		}
		in.Snapshots[src] = snap
	}

	eco, err := loadEcoIndex(filepath.Join(cfg.DataDir, ecoSnapshotFile))
	if err != nil {
		logger.Warn("eco snapshot unavailable, spots will score 0 ecological value", "error", err)
		eco = domain.EcoIndex{}
	}
	in.Eco = eco

	if cfg.FamousSpotsPath != "" {
		famous, err := loadFamous(cfg.FamousSpotsPath)
		if err != nil {
			logger.Warn("famous spot list unavailable", "path", cfg.FamousSpotsPath, "error", err)
		}
		in.Famous = famous
	}

	if cfg.TourAPIPath != "" {
		if err := readJSON(cfg.TourAPIPath, &in.Tour); err != nil {
			logger.Warn("tour export unavailable", "path", cfg.TourAPIPath, "error", err)
		}
	}

	if cfg.CatalogPath != "" {
		catalog, err := loadCatalog(cfg.CatalogPath)
		if err != nil {
			return pipeline.Inputs{}, fmt.Errorf("%w: %v", ErrCatalogMissing, err)
		}
		in.Catalog = catalog
	}

	return in, nil
}

// loadEcoIndex builds the district lookup. Rows carrying both city and
// district index under the composite key; bare rows index under whichever
// name they have.
func loadEcoIndex(path string) (domain.EcoIndex, error) {
	var records []ecoRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}

	idx := make(domain.EcoIndex, len(records))
	for _, r := range records {
		switch {
		case r.City != "" && r.District != "":
			idx[r.City+"_"+r.District] = r.Scores
		case r.City != "":
			idx[r.City] = r.Scores
		case r.District != "":
			idx[r.District] = r.Scores
		}
	}
	return idx, nil
}

func loadFamous(path string) ([]source.FamousEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Spots []source.FamousEntry `yaml:"spots"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return wrapper.Spots, nil
}

// loadCatalog reads a prior run's all-spots output for reconciliation.
func loadCatalog(path string) ([]*domain.Spot, error) {
	var doc struct {
		Spots []*domain.Spot `json:"spots"`
	}
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	return doc.Spots, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
