package discovery

import (
	"os"
	"strconv"
)

// Config holds the tunable knobs of the discovery pipeline.
type Config struct {
	// TargetPopulation is the number of genomes requested across all
	// sampling batches before deduplication.
	TargetPopulation int

	// PopulationBatches is the concurrent fan-out of the population
	// generator. Each batch carries a distinct sampling bias, so this is
	// fixed at the number of biases unless overridden for tests.
	PopulationBatches int

	// ScoreBatchSize is how many genomes each scoring call carries.
	ScoreBatchSize int

	// StressTopK is how many of the top-ranked genomes get adversarially
	// re-scored.
	StressTopK int

	// StressBatches is the concurrent fan-out of the stress tester.
	StressBatches int

	// DiversityCap is the maximum number of dedup survivors allowed to
	// share one value on the diversity-key dimension.
	DiversityCap int

	// MinAlleles is the validation floor for alleles per library dimension.
	MinAlleles int

	// AllelesPerDimension is the allele count requested from the oracle
	// per dimension.
	AllelesPerDimension int
}

// DefaultConfig returns the reference pipeline parameters.
func DefaultConfig() Config {
	return Config{
		TargetPopulation:    60,
		PopulationBatches:   4,
		ScoreBatchSize:      25,
		StressTopK:          20,
		StressBatches:       4,
		DiversityCap:        3,
		MinAlleles:          5,
		AllelesPerDimension: 15,
	}
}

// LoadConfig reads pipeline configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	applyIntEnv(&cfg.TargetPopulation, "BEACHHEAD_POPULATION")
	applyIntEnv(&cfg.ScoreBatchSize, "BEACHHEAD_SCORE_BATCH")
	applyIntEnv(&cfg.StressTopK, "BEACHHEAD_STRESS_TOP_K")
	applyIntEnv(&cfg.DiversityCap, "BEACHHEAD_DIVERSITY_CAP")
	return cfg
}

func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		*dst = n
	}
}
