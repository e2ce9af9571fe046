package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// APIKeyEnv holds the generation service credential.
	APIKeyEnv = "GEMINI_API_KEY"
	// APIKeyFileEnv points at a file holding the credential (Docker secrets).
	APIKeyFileEnv = "GEMINI_API_KEY_FILE"

	DefaultModel    = "gemini-2.5-flash"
	DefaultProvider = ProviderGemini
	DefaultTimeout  = 2 * time.Minute
)

// Provider selects the generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Config holds all configuration for a run
type Config struct {
	Environment Environment

	// Generation service
	APIKey         string
	Provider       Provider
	Model          string
	BaseURL        string
	RequestTimeout time.Duration

	// Optional draft archive
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// ConfigurationError reports a missing credential. Its message tells the
// user how to set it on both Windows and Unix shells.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Error: The '%s' environment variable is not set.\n"+
		"Please set your API key using: $env:%s='YOUR_KEY' (Windows) or export %s='YOUR_KEY' (Linux/macOS)",
		e.Variable, e.Variable, e.Variable)
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment:    GetEnvironment(),
		Provider:       DefaultProvider,
		Model:          DefaultModel,
		RequestTimeout: DefaultTimeout,
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.APIKey = apiKey

	if p := os.Getenv("CHEF_PROVIDER"); p != "" {
		cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(p)))
	}
	if m := os.Getenv("CHEF_MODEL"); m != "" {
		cfg.Model = strings.TrimSpace(m)
	}
	cfg.BaseURL = strings.TrimSpace(os.Getenv("CHEF_BASE_URL"))

	if t := os.Getenv("CHEF_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, ValidationError{Field: "CHEF_TIMEOUT", Message: fmt.Sprintf("invalid duration %q", t)}
		}
		cfg.RequestTimeout = d
	}

	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	if cfg.RedisHost != "" && cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
	cfg.RedisPassword = readSecretOrEnv("REDIS_PASSWORD", "REDIS_PASSWORD_FILE")
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, ValidationError{Field: "REDIS_DB", Message: fmt.Sprintf("not a number: %q", dbStr)}
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DraftsEnabled reports whether a Redis draft archive was configured.
func (c *Config) DraftsEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func loadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key, nil
	}

	keyFile := os.Getenv(APIKeyFileEnv)
	if keyFile == "" {
		return "", &ConfigurationError{Variable: APIKeyEnv}
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", &ConfigurationError{Variable: APIKeyEnv}
	}
	return key, nil
}

// readSecretOrEnv prefers the plain variable and falls back to a secret file.
func readSecretOrEnv(envName, fileEnvName string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	path := os.Getenv(fileEnvName)
	if path == "" {
		return ""
	}
	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
