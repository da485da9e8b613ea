package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/greenmaru/spot-catalog-etl/internal/adapter/catalog"
	kafkaadapter "github.com/greenmaru/spot-catalog-etl/internal/adapter/kafka"
	"github.com/greenmaru/spot-catalog-etl/internal/adapter/report"
	"github.com/greenmaru/spot-catalog-etl/internal/adapter/snapshot"
	"github.com/greenmaru/spot-catalog-etl/internal/config"
	"github.com/greenmaru/spot-catalog-etl/internal/observability"
	"github.com/greenmaru/spot-catalog-etl/internal/pipeline"
)

func main() {
	// Local runs keep settings in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, err := snapshot.LoadInputs(cfg, logger)
	if err != nil {
		logger.Error("failed to load inputs", "error", err)
		os.Exit(1)
	}

	p := pipeline.New(cfg, logger, metrics)
	views, summary, err := p.Run(ctx, in)
	if err != nil {
		logger.Error("aggregation aborted", "error", err)
		os.Exit(1)
	}

	if err := catalog.WriteViews(cfg.OutputDir, views); err != nil {
		logger.Error("failed to write catalog", "error", err)
		os.Exit(1)
	}

	if cfg.ReportPath != "" {
		if err := report.WriteReport(cfg.ReportPath, views); err != nil {
			logger.Error("failed to write report", "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", cfg.ReportPath)
	}

	if cfg.KafkaEnabled {
		publisher := kafkaadapter.NewPublisher(cfg, logger)
		if err := publisher.PublishSpots(ctx, views.Full); err != nil {
			logger.Error("failed to publish spots", "error", err)
			os.Exit(1)
		}
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("run complete",
		"canonical", summary.Canonical,
		"merged", summary.Merged,
		"tour_matched", summary.TourMatched,
		"eco_mapped", summary.EcoMapped,
		"top", summary.TopCount,
		"output_dir", cfg.OutputDir,
	)
}
