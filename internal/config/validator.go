package config

import (
	"fmt"

	"tailsort/internal/classifier"
)

// Validate checks that the configuration only references known group keys and
// that patterns are usable. The zero configuration is valid.
func (c *Configuration) Validate() error {
	seen := make(map[classifier.GroupKey]bool, len(c.GroupOrder))
	for i, key := range c.GroupOrder {
		if !classifier.Valid(key) {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("groupOrder[%d]: unknown group %q", i, key),
			}
		}
		if seen[key] {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("groupOrder[%d]: duplicate group %q", i, key),
			}
		}
		seen[key] = true
	}

	for i, v := range c.Tailwind.Variants {
		if v == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("tailwind.variants[%d] cannot be empty", i),
			}
		}
	}

	for i, pattern := range c.Tailwind.CustomUtilities {
		if pattern == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("tailwind.customUtilities[%d] cannot be empty", i),
			}
		}
	}

	for i, pattern := range c.IgnorePatterns {
		if pattern == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("ignorePatterns[%d] cannot be empty", i),
			}
		}
	}

	return nil
}
