package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.RetryLimit)
	assert.Equal(t, 10, cfg.AutoPost.IntervalMinutes)
	assert.NotEmpty(t, cfg.AutoPost.Topics)
	assert.NotEmpty(t, cfg.AutoPost.Tones)
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "")
	t.Setenv(EnvShopifyStoreName, "")
	t.Setenv(EnvShopifyAccessToken, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.RetryLimit)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"gemini_api_key": "file-key",
		"retry_limit": 3,
		"auto_post": {"interval_minutes": 60, "topics": ["Winter Skincare"]}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	assert.Equal(t, 3, cfg.RetryLimit)
	assert.Equal(t, 60, cfg.AutoPost.IntervalMinutes)
	assert.Equal(t, []string{"Winter Skincare"}, cfg.AutoPost.Topics)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "env-key")
	t.Setenv(EnvShopifyStoreName, "env-store")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gemini_api_key": "file-key"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, "env-store", cfg.ShopifyStoreName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_RetryLimitOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"retry_limit": 20}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestRequireGemini(t *testing.T) {
	cfg := Default()

	err := cfg.RequireGemini()
	var configErr *ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, EnvGeminiAPIKey, configErr.Name)

	cfg.GeminiAPIKey = "key"
	assert.NoError(t, cfg.RequireGemini())
}

func TestRequireShopify(t *testing.T) {
	cfg := Default()

	err := cfg.RequireShopify()
	var configErr *ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, EnvShopifyStoreName, configErr.Name)

	cfg.ShopifyStoreName = "chamkili"
	err = cfg.RequireShopify()
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, EnvShopifyAccessToken, configErr.Name)

	cfg.ShopifyAccessToken = "token"
	assert.NoError(t, cfg.RequireShopify())
}
