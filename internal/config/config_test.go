package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.APIURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, float64(0), cfg.LLM.Temperature)
	assert.Equal(t, 120, cfg.LLM.Timeout)

	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)

	assert.Equal(t, 10, cfg.Agent.MaxIterations)
	assert.Equal(t, 60, cfg.Session.TTLMinutes)
	assert.Equal(t, "*/10 * * * *", cfg.Session.SweepCron)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.UIEnabled)
}

func TestNewFromEnv_Overrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_MODEL", "gpt-4.1")
	t.Setenv("AGENT_MAX_ITERATIONS", "25")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("UI_ENABLED", "true")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, 25, cfg.Agent.MaxIterations)
	assert.Equal(t, 5, cfg.Session.TTLMinutes)
	assert.True(t, cfg.Server.UIEnabled)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestNewFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_API_KEY")
}

func TestNewFromEnv_InvalidIterationCeiling(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("AGENT_MAX_ITERATIONS", "0")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_MAX_ITERATIONS")
}

func TestNewFromEnv_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_MAX_TOKENS", "many")
	t.Setenv("LLM_TEMPERATURE", "warm")

	cfg, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.LLM.MaxTokens)
	assert.Equal(t, float64(0), cfg.LLM.Temperature)
}

func TestNewFromEnv_Options(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := NewFromEnv(func(c *Config) {
		c.Agent.MaxIterations = 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Agent.MaxIterations)
}
