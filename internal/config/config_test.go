package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 100.0, cfg.SameSourceRadiusM)
	assert.Equal(t, 300.0, cfg.CrossSourceRadiusM)
	assert.Equal(t, 10000.0, cfg.MinParkAreaSqm)
	assert.Equal(t, 100000.0, cfg.PriorityParkAreaSqm)
	assert.Equal(t, 50, cfg.TopScoreCutoff)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/spot/data")
	t.Setenv("SAME_SOURCE_RADIUS_M", "50")
	t.Setenv("TOP_SCORE_CUTOFF", "60")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("KAFKA_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/spot/data", cfg.DataDir)
	assert.Equal(t, 50.0, cfg.SameSourceRadiusM)
	assert.Equal(t, 60, cfg.TopScoreCutoff)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled)
}

func TestLoadValidation(t *testing.T) {
	t.Run("rejects malformed radius", func(t *testing.T) {
		t.Setenv("SAME_SOURCE_RADIUS_M", "wide")
		_, err := Load()
		assert.ErrorContains(t, err, "SAME_SOURCE_RADIUS_M")
	})

	t.Run("rejects inverted radii", func(t *testing.T) {
		t.Setenv("SAME_SOURCE_RADIUS_M", "500")
		_, err := Load()
		assert.ErrorContains(t, err, "must not exceed")
	})

	t.Run("rejects weights that do not sum to one", func(t *testing.T) {
		t.Setenv("WEIGHT_AREA", "0.5")
		_, err := Load()
		assert.ErrorContains(t, err, "weights must sum to 1")
	})

	t.Run("rejects kafka enabled without brokers", func(t *testing.T) {
		t.Setenv("KAFKA_ENABLED", "true")
		t.Setenv("KAFKA_BROKERS", " ")
		_, err := Load()
		assert.ErrorContains(t, err, "KAFKA_BROKERS")
	})
}

func TestWeights(t *testing.T) {
	t.Setenv("WEIGHT_AREA", "0.40")
	t.Setenv("WEIGHT_ECO_VALUE", "0.30")
	t.Setenv("WEIGHT_ACCESSIBILITY", "0.10")
	t.Setenv("WEIGHT_UNIQUENESS", "0.20")

	cfg, err := Load()
	require.NoError(t, err)

	w := cfg.Weights()
	assert.Equal(t, 0.40, w.Area)
	assert.Equal(t, 0.20, w.Uniqueness)
}
