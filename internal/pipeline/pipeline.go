// Package pipeline orchestrates one aggregation run: normalize each source
// snapshot, merge candidates into canonical spots, then classify, score,
// describe, and enrich each spot before partitioning the output views.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/greenmaru/spot-catalog-etl/internal/config"
	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/greenmaru/spot-catalog-etl/internal/enrich"
	"github.com/greenmaru/spot-catalog-etl/internal/merge"
	"github.com/greenmaru/spot-catalog-etl/internal/observability"
	"github.com/greenmaru/spot-catalog-etl/internal/output"
	"github.com/greenmaru/spot-catalog-etl/internal/source"
)

// Inputs is everything one run consumes, loaded up front by the snapshot
// adapter. Missing snapshots are simply absent from the map.
type Inputs struct {
	Snapshots map[domain.Source]source.Snapshot
	Famous    []source.FamousEntry
	Tour      []source.TourSpot
	Eco       domain.EcoIndex

	// Catalog is a prior run's canonical set for incremental reconciliation.
	Catalog []*domain.Spot
}

// Summary reports what a run did, for the final log line and for tests.
type Summary struct {
	Loaded      map[domain.Source]int
	Dropped     source.DropStats
	Candidates  int
	Canonical   int
	Merged      int
	TourMatched int
	TourAdded   int
	EcoMapped   int
	ByCategory  map[domain.Category]int
	TopCount    int
}

// Pipeline runs the batch aggregation.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger, metrics: metrics}
}

// normalizers returns the per-source normalizers in merge-priority order.
// Earlier sources win first-seen collisions, so authoritative designations
// come before high-volume zoning layers.
func (p *Pipeline) normalizers() []source.Normalizer {
	return []source.Normalizer{
		source.NewProvincialParks(),
		source.NewCountyParks(),
		source.NewNationalParks(),
		source.NewMunicipalParks(p.cfg.MinParkAreaSqm, p.cfg.PriorityParkAreaSqm),
		source.NewRivers(),
		source.NewWetlands(1000, 200),
		source.NewLandscapeReserves(),
		source.NewForestReserves(),
		source.NewEcoGrade1(500, 100),
		source.NewGreenAreas(200),
		source.NewFacilities(),
	}
}

// Run executes one aggregation over in and returns the partitioned views.
// Per-record problems degrade gracefully (logged and counted); only context
// cancellation aborts the run.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (output.Views, Summary, error) {
	start := time.Now()
	summary := Summary{
		Loaded:     make(map[domain.Source]int),
		ByCategory: make(map[domain.Category]int),
	}

	merger := merge.New(merge.Config{
		SameSourceRadiusM:  p.cfg.SameSourceRadiusM,
		CrossSourceRadiusM: p.cfg.CrossSourceRadiusM,
	})

	if len(in.Catalog) > 0 {
		merger.Seed(in.Catalog)
		p.logger.Info("seeded prior catalog", "spots", len(in.Catalog))
	}

	// Famous spots go in first so they anchor every later collision.
	famous, famousDrops := source.NormalizeFamous(in.Famous)
	p.record(domain.SourceFamous, famous, famousDrops, &summary)
	summary.Merged += merger.MergeAll(famous)

	for _, n := range p.normalizers() {
		if err := ctx.Err(); err != nil {
			return output.Views{}, summary, err
		}

		snap, ok := in.Snapshots[n.Source()]
		if !ok {
			p.logger.Warn("source snapshot missing, skipping", "source", n.Source())
			continue
		}

		cands, drops := n.Normalize(snap.Features)
		p.record(n.Source(), cands, drops, &summary)
		summary.Merged += merger.MergeAll(cands)
	}

	if err := ctx.Err(); err != nil {
		return output.Views{}, summary, err
	}

	tour, tourDrops := source.NormalizeTour(in.Tour)
	p.record(domain.SourceTourAPI, tour, tourDrops, &summary)
	matched, added := merger.MergeTour(tour)
	summary.TourMatched, summary.TourAdded = matched, added
	p.metrics.TourMatched.Add(float64(matched))

	if err := ctx.Err(); err != nil {
		return output.Views{}, summary, err
	}

	spots := merger.Spots()
	enricher := enrich.New(in.Eco)
	weights := p.cfg.Weights()

	for _, sp := range spots {
		if sp.District == "" {
			sp.District = source.DetectDistrict(sp.Location)
		}

		sp.Category = domain.Classify(sp.Candidate)
		sp.Scores = domain.ScoreSpot(sp, in.Eco, weights)
		if sp.Description == "" {
			sp.Description = domain.Describe(sp)
		}

		if enricher.Enrich(sp) {
			summary.EcoMapped++
			p.metrics.EcoMapped.Inc()
		} else {
			p.logger.Debug("no eco district match", "name", sp.Name, "district", sp.District)
			p.metrics.EcoMisses.Inc()
		}
	}

	views := output.Partition(spots, p.cfg.TopScoreCutoff)

	summary.Canonical = len(spots)
	summary.TopCount = len(views.Top)
	for cat, n := range views.CategoryCounts {
		summary.ByCategory[cat] = n
	}

	p.metrics.DuplicatesMerged.Add(float64(summary.Merged))
	p.metrics.SpotsCanonical.Set(float64(len(spots)))
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())

	p.logger.Info("aggregation complete",
		"candidates", summary.Candidates,
		"merged", summary.Merged,
		"canonical", summary.Canonical,
		"tour_matched", summary.TourMatched,
		"eco_mapped", summary.EcoMapped,
		"top", summary.TopCount,
		"duration", time.Since(start),
	)

	return views, summary, nil
}

// record tallies one source's normalization results into the summary and
// metrics, logging any drops.
func (p *Pipeline) record(src domain.Source, cands []domain.Candidate, drops source.DropStats, summary *Summary) {
	summary.Loaded[src] = len(cands)
	summary.Candidates += len(cands)
	summary.Dropped.Add(drops)

	p.metrics.CandidatesLoaded.WithLabelValues(string(src)).Add(float64(len(cands)))
	p.metrics.RecordsDropped.WithLabelValues("type").Add(float64(drops.Type))
	p.metrics.RecordsDropped.WithLabelValues("area").Add(float64(drops.Area))
	p.metrics.RecordsDropped.WithLabelValues("location").Add(float64(drops.Location))

	if total := drops.Total(); total > 0 {
		p.logger.Warn("records dropped during normalization",
			"source", src,
			"type", drops.Type,
			"area", drops.Area,
			"location", drops.Location,
		)
	}
}
