// Package config loads optional HCL-file defaults for the cmd/holdem-odds
// CLI: worker count, output style, and log level.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// CLIConfig is the complete set of cmd/holdem-odds defaults an optional HCL
// file may override.
type CLIConfig struct {
	Workers WorkerSettings `hcl:"workers,block"`
	Output  OutputSettings `hcl:"output,block"`
}

// WorkerSettings controls layer G's sharded enumeration.
type WorkerSettings struct {
	Count int `hcl:"count,optional"`
}

// OutputSettings controls the CLI's rendering.
type OutputSettings struct {
	Style    string `hcl:"style,optional"`     // "table" or "possibilities"
	LogLevel string `hcl:"log_level,optional"` // debug, info, warn, error
}

// DefaultCLIConfig returns the in-code defaults used when no config file is
// present or a file omits a field.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Workers: WorkerSettings{Count: runtime.NumCPU()},
		Output: OutputSettings{
			Style:    "table",
			LogLevel: "warn",
		},
	}
}

// Load reads an HCL configuration file, falling back to DefaultCLIConfig
// when filename is empty or the file doesn't exist. Fields the file omits
// are filled from the defaults.
func Load(filename string) (*CLIConfig, error) {
	defaults := DefaultCLIConfig()
	if filename == "" {
		return defaults, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return defaults, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("holdem-odds: parsing config %q: %s", filename, diags.Error())
	}

	var cfg CLIConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("holdem-odds: decoding config %q: %s", filename, diags.Error())
	}

	if cfg.Workers.Count == 0 {
		cfg.Workers.Count = defaults.Workers.Count
	}
	if cfg.Output.Style == "" {
		cfg.Output.Style = defaults.Output.Style
	}
	if cfg.Output.LogLevel == "" {
		cfg.Output.LogLevel = defaults.Output.LogLevel
	}
	return &cfg, nil
}

// Validate checks that the configuration's values are all usable.
func (c *CLIConfig) Validate() error {
	if c.Workers.Count < 1 {
		return fmt.Errorf("holdem-odds: worker count must be positive, got %d", c.Workers.Count)
	}

	validStyles := map[string]bool{"table": true, "possibilities": true}
	if !validStyles[c.Output.Style] {
		return fmt.Errorf("holdem-odds: invalid output style %q", c.Output.Style)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Output.LogLevel] {
		return fmt.Errorf("holdem-odds: invalid log level %q", c.Output.LogLevel)
	}

	return nil
}
