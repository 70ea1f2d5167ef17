package config

import (
	"fmt"
	"os"
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

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredEnvVars []string
	RequiredSecrets []string
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {
			RequiredEnvVars: []string{},
			RequiredSecrets: []string{
				"db_user",
				"db_password",
				"jwt_secret",
				"redis_password",
			},
		},
		Test: {
			RequiredEnvVars: []string{},
			RequiredSecrets: []string{
				"db_user",
				"db_password",
				"jwt_secret",
				"redis_password",
			},
		},
		CI: {
			RequiredEnvVars: []string{
				"SERVER_PORT",
				"DB_HOST",
				"DB_PORT",
				"DB_USER",
				"DB_NAME",
				"DB_SSL_MODE",
				"REDIS_HOST",
				"REDIS_PORT",
			},
			RequiredSecrets: []string{}, // CI uses environment variables, not Docker secrets
		},
		Production: {
			RequiredEnvVars: []string{},
			RequiredSecrets: []string{
				"db_user",
				"db_password",
				"jwt_secret",
				"redis_password",
			},
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	reqs := requirements[env]

	var errors []string

	// Validate environment variables
	for _, envVar := range reqs.RequiredEnvVars {
		if value := os.Getenv(envVar); value == "" {
			errors = append(errors, fmt.Sprintf("required environment variable %s is not set", envVar))
		}
	}

	// Validate secrets
	if env != CI {
		for _, secret := range reqs.RequiredSecrets {
			if value := readSecret(secret); value == "" {
				errors = append(errors, fmt.Sprintf("required secret %s is not set", secret))
			}
		}
	}

	// Validate sensitive values
	if cfg.DBPassword == "" {
		errors = append(errors, "database password is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT secret is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
