package config

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// Weights returns the configured scoring coefficients.
func (c *Config) Weights() domain.Weights {
	return domain.Weights{
		Area:          c.WeightArea,
		EcoValue:      c.WeightEcoValue,
		Accessibility: c.WeightAccessibility,
		Uniqueness:    c.WeightUniqueness,
	}
}
