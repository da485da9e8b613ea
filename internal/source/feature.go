// Package source contains the per-source adapters that turn heterogeneous
// raw snapshot features into the common candidate-record shape. Each adapter
// differs only in field extraction; they share the Normalizer contract:
// order-preserving, side-effect-free, zero-or-one candidate per feature, with
// records lacking a usable centroid or valid location dropped and counted.
package source

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// Center is a planar EPSG:5186 centroid as shipped in the processed
// snapshots. (0, 0) means the upstream job could not derive one.
type Center struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Feature is one raw record from a processed source snapshot. Not every
// source fills every field; adapters read the subset their source provides.
type Feature struct {
	ID             string  `json:"id"`
	UID            string  `json:"uid,omitempty"`
	Name           string  `json:"name,omitempty"`
	NameKr         string  `json:"name_kr,omitempty"`
	Alias          string  `json:"alias,omitempty"`
	Remark         string  `json:"remark,omitempty"`
	TypeSmall      string  `json:"type_small,omitempty"`
	TypeMedium     string  `json:"type_medium,omitempty"`
	Grade          string  `json:"grade,omitempty"`
	District       string  `json:"district,omitempty"`
	City           string  `json:"city,omitempty"`
	AreaSqm        float64 `json:"area_sqm,omitempty"`
	AreaSqkm       float64 `json:"area_sqkm,omitempty"`
	DesignatedYear string  `json:"designated_year,omitempty"`
	Authority      string  `json:"authority,omitempty"`
	Center         Center  `json:"center"`
}

// Snapshot is the top-level shape of a processed source snapshot file.
type Snapshot struct {
	Features []Feature `json:"features"`
}

// DropStats counts candidates discarded during normalization, per filtering
// stage, so data-quality regressions are observable in the run summary.
type DropStats struct {
	Type     int // excluded sub-type or non-whitelisted type
	Area     int // below the minimum area threshold
	Location int // missing or out-of-bounds centroid
}

// Add accumulates another adapter's counts.
func (d *DropStats) Add(o DropStats) {
	d.Type += o.Type
	d.Area += o.Area
	d.Location += o.Location
}

// Total is the sum across all stages.
func (d DropStats) Total() int {
	return d.Type + d.Area + d.Location
}

// Normalizer maps one source's raw schema into candidate records.
type Normalizer interface {
	Source() domain.Source
	Normalize(features []Feature) ([]domain.Candidate, DropStats)
}

// project converts a feature centroid, reporting a location drop on failure.
func project(c Center, drops *DropStats) (domain.Geo, bool) {
	g, ok := domain.ProjectTM(c.X, c.Y)
	if !ok {
		drops.Location++
	}
	return g, ok
}
