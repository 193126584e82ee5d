package config

import (
	"github.com/KilimcininKorOglu/asntypes/internal/ber"
	"github.com/KilimcininKorOglu/asntypes/internal/logging"
	"github.com/KilimcininKorOglu/asntypes/internal/schema"
)

// Config holds the complete tool configuration.
type Config struct {
	Logging LogConfig    `yaml:"logging"`
	Schema  SchemaConfig `yaml:"schema"`
	Codec   CodecConfig  `yaml:"codec"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// SchemaConfig holds schema loading and validation configuration.
type SchemaConfig struct {
	Paths        []string `yaml:"paths"`
	Strict       bool     `yaml:"strict"`
	MaxTagNumber uint32   `yaml:"maxTagNumber"`
}

// CodecConfig holds BER codec configuration.
type CodecConfig struct {
	MaxDepth           int  `yaml:"maxDepth"`
	EnforceConstraints bool `yaml:"enforceConstraints"`
}

// LoggerConfig returns the logging.Config for this section.
func (c LogConfig) LoggerConfig() logging.Config {
	return logging.Config{Level: c.Level, Format: c.Format, Output: c.Output}
}

// ValidateOptions returns the schema validation options for this section.
func (c SchemaConfig) ValidateOptions() schema.ValidateOptions {
	return schema.ValidateOptions{MaxTagNumber: c.MaxTagNumber, Strict: c.Strict}
}

// Options returns the codec options for this section.
func (c CodecConfig) Options() ber.Options {
	return ber.Options{MaxDepth: c.MaxDepth, EnforceConstraints: c.EnforceConstraints}
}
