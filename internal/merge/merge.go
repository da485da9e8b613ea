// Package merge deduplicates spot candidates across sources.
//
// Two passes guard against duplicates. A coordinate bucket keyed by
// 4-decimal-rounded lat/lng catches records at effectively the same point,
// and a proximity scan over a coarse grid catches nearby records within a
// configurable radius. Famous spots always win a collision regardless of
// which side arrived first.
package merge

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
)

const earthRadiusM = 6371000.0

// gridCellDeg is the proximity-index cell size. At ~0.005 degrees a cell
// spans roughly 450-550m in Gyeonggi, so a 3x3 neighborhood always covers
// the largest supported merge radius.
const gridCellDeg = 0.005

// Config holds the merge radii in meters. Candidates from the same source
// tend to be genuinely distinct even when close, so the same-source radius
// is tighter than the cross-source one.
type Config struct {
	SameSourceRadiusM  float64
	CrossSourceRadiusM float64
}

func DefaultConfig() Config {
	return Config{SameSourceRadiusM: 100, CrossSourceRadiusM: 300}
}

type gridCell struct {
	row, col int
}

// Merger accumulates candidates into a deduplicated spot set.
// Not safe for concurrent use.
type Merger struct {
	cfg    Config
	policy FieldPolicy

	spots   []*domain.Spot
	buckets map[string]int
	grid    map[gridCell][]int
}

func New(cfg Config) *Merger {
	return &Merger{
		cfg:     cfg,
		policy:  TourFieldPolicy(),
		buckets: make(map[string]int),
		grid:    make(map[gridCell][]int),
	}
}

// Seed preloads an existing canonical set, typically a prior run's catalog,
// so that incremental candidates reconcile against it instead of duplicating
// it. Seeded spots keep their identity on later collisions.
func (m *Merger) Seed(spots []*domain.Spot) {
	for _, sp := range spots {
		m.append(sp)
	}
}

// MergeAll feeds every candidate through Add and reports how many were
// merged away.
func (m *Merger) MergeAll(cands []domain.Candidate) (merged int) {
	for _, c := range cands {
		if !m.Add(c) {
			merged++
		}
	}
	return merged
}

// Add inserts one candidate, returning false when it collapsed into an
// existing spot. A famous newcomer replaces a non-famous incumbent in
// place, preserving the incumbent's position in the output order.
func (m *Merger) Add(c domain.Candidate) bool {
	key := bucketKey(c.Location)
	if i, ok := m.buckets[key]; ok {
		m.resolve(i, c)
		return false
	}

	if i, ok := m.nearest(c); ok {
		m.resolve(i, c)
		return false
	}

	m.append(domain.NewSpot(c))
	return true
}

// MergeTour reconciles tour-API candidates against the merged set. Each
// existing spot absorbs the closest tour record within the cross-source
// radius via the field policy; tour records matching nothing become spots
// of their own. Returns how many were matched and how many were added.
func (m *Merger) MergeTour(tour []domain.Candidate) (matched, added int) {
	used := make(map[int]bool)

	for _, sp := range m.spots {
		best := -1
		bestD := math.MaxFloat64
		for i, c := range tour {
			if used[i] {
				continue
			}
			d := distanceM(sp.Location, c.Location)
			if d <= m.cfg.CrossSourceRadiusM && d < bestD {
				best, bestD = i, d
			}
		}
		if best >= 0 {
			m.policy.Apply(sp, tour[best])
			sp.TourMatched = true
			used[best] = true
			matched++
		}
	}

	for i, c := range tour {
		if used[i] {
			continue
		}
		if m.Add(c) {
			added++
		}
	}
	return matched, added
}

// Spots returns the merged set in insertion order.
func (m *Merger) Spots() []*domain.Spot {
	return m.spots
}

// resolve decides a collision between the incumbent at index i and a
// newcomer. Famous beats non-famous; otherwise first-seen wins and the
// newcomer is dropped.
func (m *Merger) resolve(i int, c domain.Candidate) {
	incumbent := m.spots[i]
	if c.Famous && !incumbent.Famous {
		m.replace(i, domain.NewSpot(c))
	}
}

func (m *Merger) append(sp *domain.Spot) {
	i := len(m.spots)
	m.spots = append(m.spots, sp)
	m.index(i, sp.Location)
}

// replace swaps the spot at i for a new one, reindexing its location.
func (m *Merger) replace(i int, sp *domain.Spot) {
	old := m.spots[i]
	m.unindex(i, old.Location)
	m.spots[i] = sp
	m.index(i, sp.Location)
}

func (m *Merger) index(i int, g domain.Geo) {
	m.buckets[bucketKey(g)] = i
	cell := cellOf(g)
	m.grid[cell] = append(m.grid[cell], i)
}

func (m *Merger) unindex(i int, g domain.Geo) {
	key := bucketKey(g)
	if m.buckets[key] == i {
		delete(m.buckets, key)
	}
	cell := cellOf(g)
	members := m.grid[cell]
	for j, v := range members {
		if v == i {
			m.grid[cell] = append(members[:j], members[j+1:]...)
			break
		}
	}
}

// nearest scans the 3x3 cell neighborhood around the candidate for the
// closest spot within the applicable merge radius.
func (m *Merger) nearest(c domain.Candidate) (int, bool) {
	center := cellOf(c.Location)
	best := -1
	bestD := math.MaxFloat64

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			cell := gridCell{center.row + dr, center.col + dc}
			for _, i := range m.grid[cell] {
				sp := m.spots[i]
				radius := m.cfg.CrossSourceRadiusM
				if sp.Source == c.Source {
					radius = m.cfg.SameSourceRadiusM
				}
				d := distanceM(sp.Location, c.Location)
				if d <= radius && d < bestD {
					best, bestD = i, d
				}
			}
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}

func bucketKey(g domain.Geo) string {
	return fmt.Sprintf("%.4f_%.4f", g.Lat, g.Lng)
}

func cellOf(g domain.Geo) gridCell {
	return gridCell{
		row: int(math.Floor(g.Lat / gridCellDeg)),
		col: int(math.Floor(g.Lng / gridCellDeg)),
	}
}

func distanceM(a, b domain.Geo) float64 {
	la := s2.LatLngFromDegrees(a.Lat, a.Lng)
	lb := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return la.Distance(lb).Radians() * earthRadiusM
}
