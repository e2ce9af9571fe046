package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded settings are usable before any
// client is constructed.
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.APIKey == "" {
		errs = append(errs, ValidationError{Field: APIKeyEnv, Message: "must not be empty"})
	}

	switch cfg.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		errs = append(errs, ValidationError{
			Field:   "CHEF_PROVIDER",
			Message: fmt.Sprintf("unknown provider %q (want %s or %s)", cfg.Provider, ProviderGemini, ProviderOpenAI),
		})
	}

	if strings.TrimSpace(cfg.Model) == "" {
		errs = append(errs, ValidationError{Field: "CHEF_MODEL", Message: "must not be empty"})
	}

	if cfg.RequestTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "CHEF_TIMEOUT", Message: "must be positive"})
	}

	if cfg.BaseURL != "" && !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		errs = append(errs, ValidationError{Field: "CHEF_BASE_URL", Message: "must be an http(s) URL"})
	}

	if cfg.RedisDB < 0 {
		errs = append(errs, ValidationError{Field: "REDIS_DB", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}
