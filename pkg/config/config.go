package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sharedcrypto/pkg/crypto/types"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Load reads a JSON or YAML configuration file, applies environment
// overrides, and validates the sharedCredentials section against the
// length bounds. Violations are reported as types.ConfigError before
// any credentials are derived.
func Load(path string) (*types.Config, error) {
	file, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg types.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvironmentOverrides(&cfg)

	if err := validateCredentials(cfg.SharedCredentials); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Secrets are overridable from the environment so config files checked
// into deployments can stay free of credential material.
func applyEnvironmentOverrides(c *types.Config) {
	if v := os.Getenv("SHAREDCRYPTO_PASSWORD"); v != "" {
		c.SharedCredentials.Password = v
	}
	if v := os.Getenv("SHAREDCRYPTO_SALT"); v != "" {
		c.SharedCredentials.Salt = v
	}
}

func validateCredentials(cfg types.SharedCredentialConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return types.ConfigError{
			Field:   strings.ToLower(fe.Field()),
			Message: boundMessage(fe),
		}
	}
	return types.ConfigError{Message: err.Error()}
}

func boundMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
