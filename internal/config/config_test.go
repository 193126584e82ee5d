package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/KilimcininKorOglu/asntypes/internal/ber"
	"github.com/KilimcininKorOglu/asntypes/internal/logging"
	"github.com/KilimcininKorOglu/asntypes/internal/schema"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	want := &Config{
		Logging: LogConfig{Level: "info", Format: "text", Output: "stderr"},
		Schema:  SchemaConfig{MaxTagNumber: schema.DefaultMaxTagNumber},
		Codec:   CodecConfig{MaxDepth: ber.DefaultMaxDepth, EnforceConstraints: true},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if errs := ValidateConfig(config); len(errs) != 0 {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
logging:
  level: debug
  format: json
schema:
  paths:
    - ./schemas
    - ./more
  strict: true
codec:
  maxDepth: 16
`)
	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	want := &Config{
		Logging: LogConfig{Level: "debug", Format: "json", Output: "stderr"},
		Schema: SchemaConfig{
			Paths:        []string{"./schemas", "./more"},
			Strict:       true,
			MaxTagNumber: schema.DefaultMaxTagNumber,
		},
		Codec: CodecConfig{MaxDepth: 16, EnforceConstraints: true},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfig_Empty(t *testing.T) {
	config, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("ParseConfig(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown section", "server:\n  address: :389\n"},
		{"unknown key", "codec:\n  depth: 3\n"},
		{"wrong type", "codec:\n  maxDepth: deep\n"},
		{"malformed", "logging: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, ErrInvalidYAML) {
				t.Errorf("ParseConfig() error = %v, want ErrInvalidYAML", err)
			}
		})
	}
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("ASNINFO_LEVEL", "warn")
	t.Setenv("ASNINFO_EMPTY", "")

	tests := []struct {
		input    string
		expected string
	}{
		{"level: ${ASNINFO_LEVEL}", "level: warn"},
		{"level: ${ASNINFO_LEVEL:-info}", "level: warn"},
		{"level: ${ASNINFO_EMPTY:-info}", "level: info"},
		{"level: ${ASNINFO_UNSET:-error}", "level: error"},
		{"level: ${ASNINFO_UNSET}", "level: "},
		{"level: plain", "level: plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := string(substituteEnvVars([]byte(tt.input)))
			if got != tt.expected {
				t.Errorf("substituteEnvVars(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseConfig_EnvSubstitution(t *testing.T) {
	t.Setenv("ASNINFO_DEPTH", "8")

	config, err := ParseConfig([]byte("codec:\n  maxDepth: ${ASNINFO_DEPTH:-64}\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if config.Codec.MaxDepth != 8 {
		t.Errorf("expected maxDepth 8, got %d", config.Codec.MaxDepth)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asninfo.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  output: stdout\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Logging.Output != "stdout" {
		t.Errorf("expected output stdout, got %q", config.Logging.Output)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want ErrFileNotFound", err)
	}
}

func TestValidateConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		modify func(*Config)
		fields []string
	}{
		{"valid", func(*Config) {}, nil},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, []string{"logging.level"}},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, []string{"logging.format"}},
		{"missing log dir", func(c *Config) { c.Logging.Output = filepath.Join(dir, "nope", "x.log") }, []string{"logging.output"}},
		{"log file", func(c *Config) { c.Logging.Output = filepath.Join(dir, "x.log") }, nil},
		{"existing path", func(c *Config) { c.Schema.Paths = []string{dir} }, nil},
		{
			"bad paths",
			func(c *Config) { c.Schema.Paths = []string{"", filepath.Join(dir, "gone")} },
			[]string{"schema.paths[0]", "schema.paths[1]"},
		},
		{"zero tag number", func(c *Config) { c.Schema.MaxTagNumber = 0 }, []string{"schema.maxTagNumber"}},
		{"zero depth", func(c *Config) { c.Codec.MaxDepth = 0 }, []string{"codec.maxDepth"}},
		{"deep", func(c *Config) { c.Codec.MaxDepth = MaxCodecDepth + 1 }, []string{"codec.maxDepth"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			var fields []string
			for _, err := range ValidateConfig(config) {
				var ve ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("unexpected error type %T", err)
				}
				fields = append(fields, ve.Field)
			}
			if diff := cmp.Diff(tt.fields, fields); diff != "" {
				t.Errorf("ValidateConfig() fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSectionOptions(t *testing.T) {
	config := DefaultConfig()
	config.Schema.Strict = true
	config.Codec.EnforceConstraints = false

	if diff := cmp.Diff(logging.Config{Level: "info", Format: "text", Output: "stderr"}, config.Logging.LoggerConfig()); diff != "" {
		t.Errorf("LoggerConfig() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(schema.ValidateOptions{MaxTagNumber: schema.DefaultMaxTagNumber, Strict: true}, config.Schema.ValidateOptions()); diff != "" {
		t.Errorf("ValidateOptions() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ber.Options{MaxDepth: ber.DefaultMaxDepth}, config.Codec.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}
