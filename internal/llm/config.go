package llm

import (
	"os"
	"strconv"
)

// TaskType identifies which pipeline phase an oracle call belongs to.
type TaskType string

const (
	TaskLibrary    TaskType = "library"
	TaskPopulation TaskType = "population"
	TaskScore      TaskType = "score"
	TaskStress     TaskType = "stress"
	TaskSynthesis  TaskType = "synthesis"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the oracle subsystem.
type Config struct {
	LogCalls    bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	BaseDelayMs int
	Tasks       map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   60000,
		MaxRetries:  2,
		BaseDelayMs: 1000,
		Tasks: map[TaskType]TaskConfig{
			// Library and population need heat to surface counter-intuitive
			// alleles; scoring and stress-testing want determinism.
			TaskLibrary:    {Temperature: 0.8, MaxTokens: 4096, TimeoutMs: 60000},
			TaskPopulation: {Temperature: 0.9, MaxTokens: 8192, TimeoutMs: 90000},
			TaskScore:      {Temperature: 0.2, MaxTokens: 8192, TimeoutMs: 90000},
			TaskStress:     {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 60000},
			TaskSynthesis:  {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads oracle configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BEACHHEAD_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BEACHHEAD_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BEACHHEAD_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BEACHHEAD_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BEACHHEAD_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("BEACHHEAD_LLM_BASE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BaseDelayMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskLibrary, "BEACHHEAD_LLM_LIBRARY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPopulation, "BEACHHEAD_LLM_POPULATION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskScore, "BEACHHEAD_LLM_SCORE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskStress, "BEACHHEAD_LLM_STRESS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSynthesis, "BEACHHEAD_LLM_SYNTHESIS_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout in milliseconds for a task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
