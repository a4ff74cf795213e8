// Package config handles configuration loading and validation for tailsort.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"tailsort/internal/audit"
	"tailsort/internal/classifier"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// TailwindOptions carries the framework-specific knobs for classification and
// variant handling.
type TailwindOptions struct {
	// Prefix is prepended to every recognized utility pattern before
	// matching. It never affects variant matching.
	Prefix string `json:"prefix,omitempty"`
	// Variants is both the variant-matching vocabulary and the priority
	// list: earlier entries sort first.
	Variants []string `json:"variants,omitempty"`
	// CustomUtilities are literal prefixes or patterns classified into misc
	// ahead of the heuristic rules.
	CustomUtilities []string `json:"customUtilities,omitempty"`
}

// FormatOptions configures one formatting invocation. It is a value object:
// never mutated after construction.
type FormatOptions struct {
	GroupOrder []classifier.GroupKey `json:"groupOrder,omitempty"`
	Tailwind   TailwindOptions       `json:"tailwind,omitempty"`
}

// DefaultFormatOptions returns options with the canonical ten-group order and
// no framework customization.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{GroupOrder: classifier.AllGroups()}
}

// EffectiveGroupOrder returns the configured group order, or the canonical
// ten-group order when none is set. A configured order is honored exactly:
// groups it omits (misc included) are filtered from output.
func (o FormatOptions) EffectiveGroupOrder() []classifier.GroupKey {
	if len(o.GroupOrder) == 0 {
		return classifier.AllGroups()
	}
	return o.GroupOrder
}

// Configuration is the on-disk tailsort.json shape.
type Configuration struct {
	GroupOrder     []classifier.GroupKey `json:"groupOrder,omitempty"`
	Tailwind       TailwindOptions       `json:"tailwind,omitempty"`
	IgnorePatterns []string              `json:"ignorePatterns,omitempty"`
	Audit          *audit.AuditConfig    `json:"audit,omitempty"`
}

// FormatOptions derives the per-invocation options from the file
// configuration.
func (c *Configuration) FormatOptions() FormatOptions {
	return FormatOptions{
		GroupOrder: c.GroupOrder,
		Tailwind:   c.Tailwind,
	}
}

// ApplyAuditDefaults ensures the audit configuration has sensible defaults.
func (c *Configuration) ApplyAuditDefaults() {
	defaults := audit.DefaultAuditConfig()
	if c.Audit == nil {
		c.Audit = &defaults
		return
	}
	if c.Audit.LogDirectory == "" {
		c.Audit.LogDirectory = defaults.LogDirectory
	}
}

// Load reads, parses, and validates a configuration file.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Type: FileNotFound, Path: path}
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Type: InvalidJSON, Path: path, Message: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ApplyAuditDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no tailsort.json exists.
func Default() *Configuration {
	cfg := &Configuration{}
	cfg.ApplyAuditDefaults()
	return cfg
}
