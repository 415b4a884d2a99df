// Package config loads mendoc settings from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	m "github.com/mendoc-dev/mendoc/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".mendoc.yaml"

const defaultTimeoutSeconds = 600

// Config holds all tunable settings for a fix run.
type Config struct {
	Harness    Harness    `yaml:"harness"`
	Syntax     Syntax     `yaml:"syntax"`
	Features   Features   `yaml:"features"`
	Tracebacks Tracebacks `yaml:"tracebacks"`
}

// Harness describes how to invoke the doctest harness.
type Harness struct {
	// Command is the harness argv; file paths and switches are appended.
	Command []string `yaml:"command"`
	// Interpreter runs the import smoke test before a fix run.
	Interpreter string `yaml:"interpreter"`
	// Environment is the module imported by the smoke test. Empty skips it.
	Environment string `yaml:"environment"`
	// TimeoutSeconds bounds a single harness invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Syntax configures the doctest dialect markers.
type Syntax struct {
	Prompt        string   `yaml:"prompt"`
	Continuation  string   `yaml:"continuation"`
	FileTagPrefix string   `yaml:"file_tag_prefix"`
	Docstrings    []string `yaml:"docstrings"`
}

// Features maps harness observations to capability tags.
type Features struct {
	Modules map[string]string `yaml:"modules"`
	Names   map[string]string `yaml:"names"`
}

// Tracebacks configures traceback rewriting.
type Tracebacks struct {
	// InternalMarkers are path fragments identifying harness-internal frames.
	InternalMarkers []string `yaml:"internal_markers"`
}

// DefaultConfig returns the built-in defaults used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Harness: Harness{
			Command:        []string{"python3", "-m", "doctest"},
			Interpreter:    "python3",
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Syntax: Syntax{
			Prompt:        ">>>",
			Continuation:  "...",
			FileTagPrefix: "# doctest:",
			Docstrings:    []string{`"""`, "'''"},
		},
		Features: Features{
			Modules: map[string]string{},
			Names:   map[string]string{},
		},
		Tracebacks: Tracebacks{
			InternalMarkers: []string{"doctest.py", "<doctest"},
		},
	}
}

// Load reads the configuration at path, merging it over the defaults.
// A missing file at the default location is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Harness.Command) == 0 {
		return fmt.Errorf("harness command must not be empty")
	}

	if c.Syntax.Prompt == "" || c.Syntax.Continuation == "" {
		return fmt.Errorf("syntax prompt and continuation must not be empty")
	}

	return nil
}

// Timeout returns the harness timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.Harness.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}

	return time.Duration(c.Harness.TimeoutSeconds) * time.Second
}

// BuildSyntax converts the syntax section into the domain model type.
func (c *Config) BuildSyntax() m.Syntax {
	return m.Syntax{
		Prompt:        c.Syntax.Prompt,
		Continuation:  c.Syntax.Continuation,
		FileTagPrefix: c.Syntax.FileTagPrefix,
		Docstrings:    c.Syntax.Docstrings,
	}
}

// BuildFeatures converts the feature maps into the domain model type.
func (c *Config) BuildFeatures() m.Features {
	return m.Features{
		Modules:         c.Features.Modules,
		Names:           c.Features.Names,
		InternalMarkers: c.Tracebacks.InternalMarkers,
	}
}
