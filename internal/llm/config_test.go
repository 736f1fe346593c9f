package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Greater(t, cfg.TimeoutMs, 0)
	assert.Greater(t, cfg.BaseDelayMs, 0)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BEACHHEAD_LLM_ENDPOINT", "http://example.test:9999")
	t.Setenv("BEACHHEAD_LLM_MODEL", "custom-model")
	t.Setenv("BEACHHEAD_LLM_MAX_RETRIES", "5")
	t.Setenv("BEACHHEAD_LLM_TIMEOUT_MS", "12345")
	t.Setenv("BEACHHEAD_LLM_SCORE_TIMEOUT_MS", "55555")

	cfg := LoadConfig()
	assert.Equal(t, "http://example.test:9999", cfg.Endpoint)
	assert.Equal(t, "custom-model", cfg.Model)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 12345, cfg.TimeoutMs)
	assert.Equal(t, 55555, cfg.TaskTimeout(TaskScore))
}

func TestLoadConfig_IgnoresInvalidEnv(t *testing.T) {
	t.Setenv("BEACHHEAD_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("BEACHHEAD_LLM_MAX_RETRIES", "-3")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 7000
	cfg.Tasks[TaskLibrary] = TaskConfig{Temperature: 0.5, MaxTokens: 100, TimeoutMs: 0}

	require.Equal(t, 7000, cfg.TaskTimeout(TaskLibrary))
	assert.NotEqual(t, 7000, cfg.TaskTimeout(TaskScore))
}

func TestDefaultConfig_AllTasksConfigured(t *testing.T) {
	cfg := DefaultConfig()
	for _, task := range []TaskType{TaskLibrary, TaskPopulation, TaskScore, TaskStress, TaskSynthesis} {
		tc, ok := cfg.Tasks[task]
		require.True(t, ok, "missing task config for %s", task)
		assert.Greater(t, tc.MaxTokens, 0)
	}
}
