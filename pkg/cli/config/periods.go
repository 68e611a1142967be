package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/lifetrace-app/lifetrace/pkg/domain/model/config"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/utils/logging"
)

// Periods holds CLI flags for extraction period configuration
type Periods struct {
	path string
}

// Flags returns CLI flags for period configuration
func (p *Periods) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "periods-config",
			Usage:       "Path to extraction period TOML config (built-in defaults when empty)",
			Sources:     cli.EnvVars("LIFETRACE_PERIODS_CONFIG"),
			Destination: &p.path,
		},
	}
}

// periodsFile is the TOML shape of the admin-tunable period configuration
type periodsFile struct {
	MinConfidence *float64      `toml:"min_confidence"`
	Periods       []periodEntry `toml:"period"`
}

type periodEntry struct {
	Type          string `toml:"type"`
	MaxKeywords   int    `toml:"max_keywords"`
	MinDataPoints int    `toml:"min_data_points"`
}

// Validate checks one period entry
func (e *periodEntry) Validate() error {
	if err := types.PeriodType(e.Type).Validate(); err != nil {
		return goerr.Wrap(err, "invalid period entry")
	}
	if e.MaxKeywords < 1 {
		return goerr.Wrap(ErrInvalidConfig, "max_keywords must be at least 1", goerr.V("type", e.Type))
	}
	if e.MinDataPoints < 1 {
		return goerr.Wrap(ErrInvalidConfig, "min_data_points must be at least 1", goerr.V("type", e.Type))
	}
	return nil
}

// Configure loads the extraction configuration. Entries in the file
// override the built-in defaults per period type; unlisted period types
// keep their defaults.
func (p *Periods) Configure() (*domainConfig.ExtractionConfig, error) {
	cfg := domainConfig.DefaultExtractionConfig()
	if p.path == "" {
		return cfg, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, goerr.Wrap(ErrConfigNotFound, "failed to read periods config", goerr.V(ConfigPathKey, p.path))
	}

	var file periodsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, p.path))
	}

	seen := make(map[string]bool)
	for _, entry := range file.Periods {
		if err := entry.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid periods config", goerr.V(ConfigPathKey, p.path))
		}
		if seen[entry.Type] {
			return nil, goerr.Wrap(ErrDuplicatePeriod, "duplicate period entry", goerr.V("type", entry.Type))
		}
		seen[entry.Type] = true

		for i := range cfg.Periods {
			if cfg.Periods[i].Type == types.PeriodType(entry.Type) {
				cfg.Periods[i].MaxKeywords = entry.MaxKeywords
				cfg.Periods[i].MinDataPoints = entry.MinDataPoints
			}
		}
	}

	if file.MinConfidence != nil {
		if *file.MinConfidence < 0 || *file.MinConfidence > 1 {
			return nil, goerr.Wrap(ErrInvalidConfig, "min_confidence must be within [0,1]",
				goerr.V("min_confidence", *file.MinConfidence))
		}
		cfg.MinConfidence = *file.MinConfidence
	}

	logging.Default().Info("Loaded periods config", "path", p.path)
	return cfg, nil
}
