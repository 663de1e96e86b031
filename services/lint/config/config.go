// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/AleutianLint/services/lint/naming"
)

// =============================================================================
// Embedded Default Configuration
// =============================================================================

//go:embed default_config.yaml
var defaultConfigYAML []byte

// MaxYAMLFileSize is the maximum config file size accepted by Load.
const MaxYAMLFileSize = 1 * 1024 * 1024 // 1MB

// =============================================================================
// Configuration Types
// =============================================================================

// Config is the full AleutianLint configuration.
//
// Description:
//
//	Carries the camelcase rule options plus engine and server settings.
//	The rule section is parsed strictly (unknown keys rejected) so a typo
//	never silently disables a check; the rest of the file is permissive.
//
// Thread Safety: Immutable after loading; safe for concurrent use.
type Config struct {
	// Rule holds the camelcase rule options.
	Rule RuleConfig `yaml:"rule"`

	// Engine holds file handling and concurrency settings.
	Engine EngineConfig `yaml:"engine" validate:"required"`

	// Server holds HTTP service settings. Used only by the serve command.
	Server ServerConfig `yaml:"server" validate:"required"`
}

// RuleConfig mirrors the camelcase rule options.
type RuleConfig struct {
	// Properties controls whether property-like identifiers are checked.
	// "always" or "never"; any other value degrades to "always".
	Properties string `yaml:"properties"`

	// PropertiesStyle selects the property casing: "all", "lower", "upper".
	PropertiesStyle string `yaml:"properties_style" validate:"omitempty,oneof=all lower upper"`

	// IgnoreDestructuring exempts self-bound destructuring names.
	IgnoreDestructuring bool `yaml:"ignore_destructuring"`
}

// EngineConfig holds file handling and concurrency settings.
type EngineConfig struct {
	// MaxFileSizeBytes is the largest source file the parser accepts.
	MaxFileSizeBytes int `yaml:"max_file_size_bytes" validate:"gt=0"`

	// WorkerCount bounds concurrent file checks in path runs.
	WorkerCount int `yaml:"worker_count" validate:"gt=0,lte=64"`

	// Extensions lists the file extensions treated as JavaScript.
	Extensions []string `yaml:"extensions" validate:"min=1,dive,startswith=."`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `yaml:"host" validate:"required"`

	// Port is the listen port.
	Port int `yaml:"port" validate:"gt=0,lte=65535"`

	// RateLimitRPS is the sustained request rate per client.
	RateLimitRPS float64 `yaml:"rate_limit_rps" validate:"gt=0"`

	// RateLimitBurst is the burst allowance above the sustained rate.
	RateLimitBurst int `yaml:"rate_limit_burst" validate:"gt=0"`

	// MaxRequestBytes caps the request body size on check endpoints.
	MaxRequestBytes int64 `yaml:"max_request_bytes" validate:"gt=0"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// =============================================================================
// Loading
// =============================================================================

var configValidator = validator.New()

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Load(defaultConfigYAML)
	if err != nil {
		// The embedded defaults are fixed at build time; a failure here is a
		// packaging defect, not a runtime condition.
		panic(fmt.Sprintf("embedded default config invalid: %v", err))
	}
	return cfg
}

// Load parses and validates configuration from YAML bytes.
//
// Description:
//
//	Parses the file permissively, then re-parses the rule section with
//	strict field checking. Unknown rule keys fail the load; an unknown
//	properties value degrades to "always" with a warning, matching the
//	rule's permissive option handling.
//
// Inputs:
//
//	data - Raw YAML bytes.
//
// Outputs:
//
//	*Config - The validated configuration. Never nil on success.
//	error   - Non-nil if parsing or validation fails.
func Load(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("config.Load: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("config.Load: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parsing YAML: %w", err)
	}

	if err := checkRuleFieldsStrict(data); err != nil {
		return nil, fmt.Errorf("config.Load: rule section: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Rule.Properties != string(naming.PropertiesAlways) &&
		cfg.Rule.Properties != string(naming.PropertiesNever) {
		if cfg.Rule.Properties != "" {
			slog.Warn("unknown properties mode, using always",
				slog.String("value", cfg.Rule.Properties))
		}
		cfg.Rule.Properties = string(naming.PropertiesAlways)
	}

	if err := configValidator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: validation: %w", err)
	}

	return &cfg, nil
}

// LoadFile reads and loads configuration from a file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadFile: reading %s: %w", path, err)
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("config.LoadFile: %s: %w", path, err)
	}
	slog.Info("config loaded",
		slog.String("path", path),
		slog.String("properties", cfg.Rule.Properties),
		slog.String("properties_style", cfg.Rule.PropertiesStyle),
		slog.Bool("ignore_destructuring", cfg.Rule.IgnoreDestructuring),
	)
	return cfg, nil
}

// ToOptions converts the rule section into engine options.
func (c *Config) ToOptions() naming.Options {
	return naming.Options{
		Properties:          naming.PropertiesMode(c.Rule.Properties),
		PropertiesStyle:     naming.PropertyStyle(c.Rule.PropertiesStyle),
		IgnoreDestructuring: c.Rule.IgnoreDestructuring,
	}.Normalize()
}

// applyDefaults fills unset engine and server fields from the embedded
// defaults so partial config files stay valid.
func applyDefaults(cfg *Config) {
	var def Config
	if err := yaml.Unmarshal(defaultConfigYAML, &def); err != nil {
		panic(fmt.Sprintf("embedded default config unparseable: %v", err))
	}

	if cfg.Engine.MaxFileSizeBytes == 0 {
		cfg.Engine.MaxFileSizeBytes = def.Engine.MaxFileSizeBytes
	}
	if cfg.Engine.WorkerCount == 0 {
		cfg.Engine.WorkerCount = def.Engine.WorkerCount
	}
	if len(cfg.Engine.Extensions) == 0 {
		cfg.Engine.Extensions = def.Engine.Extensions
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = def.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.RateLimitRPS == 0 {
		cfg.Server.RateLimitRPS = def.Server.RateLimitRPS
	}
	if cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = def.Server.RateLimitBurst
	}
	if cfg.Server.MaxRequestBytes == 0 {
		cfg.Server.MaxRequestBytes = def.Server.MaxRequestBytes
	}
	if cfg.Rule.PropertiesStyle == "" {
		cfg.Rule.PropertiesStyle = string(naming.PropertyStyleAll)
	}
}

// checkRuleFieldsStrict re-parses only the rule section with unknown keys
// rejected.
func checkRuleFieldsStrict(data []byte) error {
	var doc struct {
		Rule yaml.Node `yaml:"rule"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Rule.Kind == 0 {
		return nil // no rule section, defaults apply
	}

	raw, err := yaml.Marshal(&doc.Rule)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var rule RuleConfig
	if err := dec.Decode(&rule); err != nil {
		return fmt.Errorf("unknown or malformed rule option: %w", err)
	}
	return nil
}
