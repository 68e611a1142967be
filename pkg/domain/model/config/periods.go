package config

import (
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// PeriodConfig holds the admin-tunable extraction constraints for one
// period type.
type PeriodConfig struct {
	Type          types.PeriodType
	MaxKeywords   int // cap on keywords emitted per run
	MinDataPoints int // runs with fewer vectors terminate with no output
}

// ExtractionConfig is the full period configuration consumed by the
// extraction engine. Read-only once built.
type ExtractionConfig struct {
	Periods       []PeriodConfig
	MinConfidence float64 // keywords below this cohesion are discarded
}

// DefaultMinConfidence is applied when no explicit threshold is configured.
const DefaultMinConfidence = 0.5

// DefaultExtractionConfig returns the built-in period constraints used
// when no configuration file is supplied.
func DefaultExtractionConfig() *ExtractionConfig {
	return &ExtractionConfig{
		Periods: []PeriodConfig{
			{Type: types.PeriodWeekly, MaxKeywords: 3, MinDataPoints: 2},
			{Type: types.PeriodMonthly, MaxKeywords: 5, MinDataPoints: 5},
			{Type: types.PeriodQuarterly, MaxKeywords: 3, MinDataPoints: 10},
			{Type: types.PeriodYearly, MaxKeywords: 10, MinDataPoints: 30},
		},
		MinConfidence: DefaultMinConfidence,
	}
}

// Period returns the configuration for the given period type, or false
// when the type is not configured.
func (c *ExtractionConfig) Period(pt types.PeriodType) (PeriodConfig, bool) {
	for _, p := range c.Periods {
		if p.Type == pt {
			return p, true
		}
	}
	return PeriodConfig{}, false
}
