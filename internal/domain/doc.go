// Package domain models point-of-interest ("spot") data aggregated from the
// Gyeonggi climate platform open-data snapshots.
//
// # Data Sources
//
// Each spot originates from one of several per-source snapshot files produced
// by the upstream fetch jobs: municipal parks, designated parks (provincial,
// county, national), national rivers, rice-field wetlands, culture and sports
// facilities, ecology-grade-1 management areas, landscape reserves, forest
// genetic resource reserves, green areas, a manually curated famous-places
// list, and a tourism-API snapshot. A source tag on every record identifies
// provenance and drives both merge precedence and uniqueness scoring.
//
// # Coordinate Conventions
//
// Snapshot centroids are planar EPSG:5186 (Korean central-belt TM) pairs.
// [ProjectTM] converts them with a fixed-origin linear approximation:
//
//	lng = 127.0 + (x − 200000) / 89000
//	lat = 38.0 + (y − 600000) / 111000
//
// This is a first-order local approximation, not a geodetic transform; the
// error grows away from the 38°N/127°E origin and stays inside the ~100 m
// tolerance the merge thresholds already allow. Results are rounded to six
// decimal places so repeated runs produce byte-identical output. Points that
// fall outside [36.0, 39.0] × [125.0, 129.0], and the (0, 0) placeholder
// centroid, are rejected.
//
// # Categories
//
// Every canonical spot is assigned exactly one of five categories: nature,
// water, sports, culture, or ecology. Source-based rules are tried first
// (a wetland is water regardless of its name), then keyword scans over the
// concatenated name and raw type, then the nature default. See [Classify].
//
// # Scoring
//
// The travel-worthiness score is a weighted sum of four 0–100 components:
// a log-scale area score (10,000 m² ≈ 50 points, 1,000,000 m² ≈ 100),
// an ecological value looked up per administrative district, a fixed
// accessibility placeholder of 50, and a provenance-derived uniqueness tier.
// Ecological value and uniqueness carry 60% of the weight combined because
// the catalog exists to surface ecologically distinctive destinations, not
// merely large ones. See [ScoreSpot].
//
// # District Keys
//
// Ecological indicator records are keyed by "{city}_{district}" strings.
// Administrative names in the source data are inconsistent ("남양주시" vs
// "남양주"), so lookups strip the 시/군 suffixes before substring matching.
package domain
