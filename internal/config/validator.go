package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the configuration values against their allowed ranges
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		case "min":
			problems = append(problems, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
}

// ValidateWithWarnings validates the configuration and returns warnings
// for values that are legal but probably unintended
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if c.EffectCacheTTL == 0 {
		warnings = append(warnings, "EFFECT_CACHE_TTL is 0 - parsed ability texts never expire from the cache")
	}
	if c.SimMatches > 0 && c.SimWorkers > c.SimMatches {
		warnings = append(warnings, fmt.Sprintf("SIM_WORKERS (%d) exceeds SIM_MATCHES (%d) - some workers will stay idle", c.SimWorkers, c.SimMatches))
	}

	return warnings, nil
}
