package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes and validates the embedded configuration.
func Load() (InvadersConfig, error) {
	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded document is broken
		cfg = DefaultInvadersConfig()
		if verr := cfg.Validate(); verr != nil {
			return cfg, verr
		}
		return cfg, nil
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Keys missing from data keep their default value.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
