// Package config defines the application configuration for the
// summarization engine and the API server. Values come from environment
// variables (with validation and fallback) layered over an optional YAML
// configuration file.
package config

import (
	"runtime"

	pkgconfig "tldr/internal/pkg/config"
	"tldr/internal/summarizer"
)

// EngineConfig holds the summarization engine defaults for a process.
type EngineConfig struct {
	// DefaultPercentage is the size target applied when a request leaves
	// it unset. Must lie in [1,100].
	DefaultPercentage int
	// DefaultMode is the selection policy applied when a request leaves it
	// unset.
	DefaultMode summarizer.Mode
	// ScoringParallelism bounds the scoring worker pool; 1 disables
	// parallel scoring.
	ScoringParallelism int
}

// LoadEngineConfig loads the engine defaults from the environment.
// Invalid values fall back to the documented defaults; the returned
// warnings should be logged by the caller.
//
// Environment variables:
//   - TLDR_PERCENTAGE: default size target, integer in [1,100] (default 30)
//   - TLDR_MODE: default selection mode, value|length|best (default best)
//   - TLDR_SCORING_PARALLELISM: scoring worker bound (default NumCPU)
func LoadEngineConfig() (EngineConfig, []string) {
	var warnings []string

	percentage := pkgconfig.LoadEnvInt("TLDR_PERCENTAGE", 30, func(v int) error {
		return pkgconfig.ValidateIntRange(v, 1, 100)
	})
	warnings = append(warnings, percentage.Warnings...)

	mode := summarizer.ModeBest
	if raw := pkgconfig.LoadEnvString("TLDR_MODE", string(summarizer.ModeBest)); raw != "" {
		parsed, err := summarizer.ParseMode(raw)
		if err != nil {
			warnings = append(warnings, "Invalid TLDR_MODE='"+raw+"', falling back to default 'best'")
		} else {
			mode = parsed
		}
	}

	parallelism := pkgconfig.LoadEnvInt("TLDR_SCORING_PARALLELISM", runtime.NumCPU(), pkgconfig.ValidatePositiveInt)
	warnings = append(warnings, parallelism.Warnings...)

	return EngineConfig{
		DefaultPercentage:  percentage.Value.(int),
		DefaultMode:        mode,
		ScoringParallelism: parallelism.Value.(int),
	}, warnings
}
