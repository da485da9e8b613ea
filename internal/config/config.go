package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataDir         string
	OutputDir       string
	FamousSpotsPath string
	TourAPIPath     string
	CatalogPath     string
	ReportPath      string
	LogLevel        string
	LogFormat       string

	// Merge radii in meters.
	SameSourceRadiusM  float64
	CrossSourceRadiusM float64

	// Municipal park filters in square meters.
	MinParkAreaSqm      float64
	PriorityParkAreaSqm float64

	TopScoreCutoff int

	// Scoring weights. Must sum to 1.
	WeightArea          float64
	WeightEcoValue      float64
	WeightAccessibility float64
	WeightUniqueness    float64

	// Kafka publishing configuration.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	sameRadius, err := parseFloat("SAME_SOURCE_RADIUS_M", 100)
	if err != nil {
		return nil, err
	}
	crossRadius, err := parseFloat("CROSS_SOURCE_RADIUS_M", 300)
	if err != nil {
		return nil, err
	}
	minParkArea, err := parseFloat("MIN_PARK_AREA_SQM", 10000)
	if err != nil {
		return nil, err
	}
	priorityParkArea, err := parseFloat("PRIORITY_PARK_AREA_SQM", 100000)
	if err != nil {
		return nil, err
	}
	topCutoff, err := parseInt("TOP_SCORE_CUTOFF", 50)
	if err != nil {
		return nil, err
	}

	wArea, err := parseFloat("WEIGHT_AREA", 0.25)
	if err != nil {
		return nil, err
	}
	wEco, err := parseFloat("WEIGHT_ECO_VALUE", 0.30)
	if err != nil {
		return nil, err
	}
	wAccess, err := parseFloat("WEIGHT_ACCESSIBILITY", 0.15)
	if err != nil {
		return nil, err
	}
	wUnique, err := parseFloat("WEIGHT_UNIQUENESS", 0.30)
	if err != nil {
		return nil, err
	}

	kafkaEnabled := false
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		DataDir:         envOrDefault("DATA_DIR", "data"),
		OutputDir:       envOrDefault("OUTPUT_DIR", "output"),
		FamousSpotsPath: envOrDefault("FAMOUS_SPOTS_PATH", "data/famous_spots.yaml"),
		TourAPIPath:     os.Getenv("TOUR_API_PATH"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		ReportPath:      os.Getenv("REPORT_PATH"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),

		SameSourceRadiusM:  sameRadius,
		CrossSourceRadiusM: crossRadius,

		MinParkAreaSqm:      minParkArea,
		PriorityParkAreaSqm: priorityParkArea,

		TopScoreCutoff: topCutoff,

		WeightArea:          wArea,
		WeightEcoValue:      wEco,
		WeightAccessibility: wAccess,
		WeightUniqueness:    wUnique,

		KafkaBrokers: parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "canonical-spots"),
		KafkaEnabled: kafkaEnabled,
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if cfg.SameSourceRadiusM <= 0 || cfg.CrossSourceRadiusM <= 0 {
		return nil, errors.New("merge radii must be positive")
	}
	if cfg.SameSourceRadiusM > cfg.CrossSourceRadiusM {
		return nil, errors.New("SAME_SOURCE_RADIUS_M must not exceed CROSS_SOURCE_RADIUS_M")
	}
	weightSum := cfg.WeightArea + cfg.WeightEcoValue + cfg.WeightAccessibility + cfg.WeightUniqueness
	if math.Abs(weightSum-1) > 0.001 {
		return nil, fmt.Errorf("scoring weights must sum to 1, got %.3f", weightSum)
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
