package config

import (
	"github.com/KilimcininKorOglu/asntypes/internal/ber"
	"github.com/KilimcininKorOglu/asntypes/internal/schema"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Schema: SchemaConfig{
			Paths:        nil,
			Strict:       false,
			MaxTagNumber: schema.DefaultMaxTagNumber,
		},
		Codec: CodecConfig{
			MaxDepth:           ber.DefaultMaxDepth,
			EnforceConstraints: true,
		},
	}
}
