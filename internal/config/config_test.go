package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := Load()
	assert.Error(t, err, "starting without a model API key is fatal")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("MEDCHAT_DB_PATH", "")
	t.Setenv("COMPLETION_MODEL", "")
	t.Setenv("COMPLETION_MAX_TOKENS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "./medchat.db", cfg.DB.Path)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 1500, cfg.LLM.MaxTokens)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("MEDCHAT_DB_PATH", "/tmp/other.db")
	t.Setenv("COMPLETION_MODEL", "gpt-4o")
	t.Setenv("COMPLETION_MAX_TOKENS", "256")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/other.db", cfg.DB.Path)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 256, cfg.LLM.MaxTokens)
}

func TestLoadRejectsBadMaxTokens(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("COMPLETION_MAX_TOKENS", "many")
	_, err := Load()
	assert.Error(t, err)
}
