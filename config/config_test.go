package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so host settings cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		APIKeyEnv, APIKeyFileEnv,
		"CHEF_PROVIDER", "CHEF_MODEL", "CHEF_BASE_URL", "CHEF_TIMEOUT",
		"REDIS_URL", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_PASSWORD_FILE", "REDIS_DB",
		"CI", "ENV",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv(APIKeyEnv, "test-api-key")
	t.Setenv("CHEF_MODEL", "gemini-2.5-pro")
	t.Setenv("CHEF_TIMEOUT", "45s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-api-key", cfg.APIKey)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.DraftsEnabled())
	assert.Equal(t, Development, cfg.Environment)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(APIKeyEnv, "  padded-key  ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "padded-key", cfg.APIKey)
	assert.Equal(t, DefaultProvider, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.BaseURL)
	assert.False(t, cfg.DraftsEnabled())
}

func TestLoadConfigMissingCredential(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, APIKeyEnv, cfgErr.Variable)
	assert.Contains(t, err.Error(), "$env:GEMINI_API_KEY='YOUR_KEY' (Windows)")
	assert.Contains(t, err.Error(), "export GEMINI_API_KEY='YOUR_KEY' (Linux/macOS)")
}

func TestLoadConfigAPIKeyFile(t *testing.T) {
	t.Run("should read key from file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "gemini_api_key")
		require.NoError(t, os.WriteFile(path, []byte("file-key\n"), 0600))
		t.Setenv(APIKeyFileEnv, path)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.APIKey)
	})

	t.Run("should treat empty file as missing credential", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "gemini_api_key")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))
		t.Setenv(APIKeyFileEnv, path)

		_, err := LoadConfig()
		var cfgErr *ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("should fail on unreadable file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(APIKeyFileEnv, filepath.Join(t.TempDir(), "missing"))

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read API key file")
	})
}

func TestLoadConfigInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "bad timeout", env: map[string]string{"CHEF_TIMEOUT": "soon"}, field: "CHEF_TIMEOUT"},
		{name: "zero timeout", env: map[string]string{"CHEF_TIMEOUT": "0s"}, field: "CHEF_TIMEOUT"},
		{name: "unknown provider", env: map[string]string{"CHEF_PROVIDER": "bard"}, field: "CHEF_PROVIDER"},
		{name: "bad base url", env: map[string]string{"CHEF_BASE_URL": "localhost:8080"}, field: "CHEF_BASE_URL"},
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "zero"}, field: "REDIS_DB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(APIKeyEnv, "test-api-key")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			require.Error(t, err)

			var vErr ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestRedisHostDefaultsPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(APIKeyEnv, "test-api-key")
	t.Setenv("REDIS_HOST", "cache")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.True(t, cfg.DraftsEnabled())
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		ci, env  string
		want     Environment
		loadsEnv bool
	}{
		{ci: "true", env: "production", want: CI, loadsEnv: false},
		{env: "production", want: Production, loadsEnv: false},
		{env: "test", want: Test, loadsEnv: true},
		{env: "", want: Development, loadsEnv: true},
		{env: "staging", want: Development, loadsEnv: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.want)+"/"+tt.env, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			t.Setenv("ENV", tt.env)

			got := GetEnvironment()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.loadsEnv, got.LoadsDotEnv())
		})
	}
}
