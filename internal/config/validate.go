package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxCodecDepth is the largest nesting limit ValidateConfig accepts.
const MaxCodecDepth = 1024

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	// Validate logging configuration
	errs = append(errs, validateLogConfig(&config.Logging)...)

	// Validate schema configuration
	errs = append(errs, validateSchemaConfig(&config.Schema)...)

	// Validate codec configuration
	errs = append(errs, validateCodecConfig(&config.Codec)...)

	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, or error",
		})
	}

	// Validate log format
	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	// Validate output
	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		dir := filepath.Dir(config.Output)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: fmt.Sprintf("directory %s does not exist", dir),
			})
		}
	}

	return errs
}

// validateSchemaConfig validates schema configuration.
func validateSchemaConfig(config *SchemaConfig) []error {
	var errs []error

	for i, path := range config.Paths {
		field := fmt.Sprintf("schema.paths[%d]", i)
		if path == "" {
			errs = append(errs, ValidationError{Field: field, Message: "must not be empty"})
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s does not exist", path),
			})
		}
	}

	if config.MaxTagNumber == 0 {
		errs = append(errs, ValidationError{
			Field:   "schema.maxTagNumber",
			Message: "must be positive",
		})
	}

	return errs
}

// validateCodecConfig validates codec configuration.
func validateCodecConfig(config *CodecConfig) []error {
	var errs []error

	if config.MaxDepth < 1 || config.MaxDepth > MaxCodecDepth {
		errs = append(errs, ValidationError{
			Field:   "codec.maxDepth",
			Message: fmt.Sprintf("must be between 1 and %d", MaxCodecDepth),
		})
	}

	return errs
}
