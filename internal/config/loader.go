package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config dirs.
const configFile = "grove.yaml"

// LoadGrove loads the grove tuning.
// Search order: customPath -> ~/.grove/configs/grove.yaml -> ./configs/grove.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func LoadGrove(customPath string) (GroveConfig, error) {
	cfg := embeddedGrove()

	// Custom path errors are reported; the other locations are optional
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// embeddedGrove decodes the embedded YAML, falling back to the hard-coded
// defaults if the embed is unusable.
func embeddedGrove() GroveConfig {
	cfg := DefaultGroveConfig()
	if err := yaml.Unmarshal(defaultGroveYAML, &cfg); err != nil {
		return DefaultGroveConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grove", "configs", filename)
}

// Validate rejects tunings the integrator cannot run with.
func (c GroveConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.MaxJumps < 1:
		return fmt.Errorf("config: physics.max_jumps must be at least 1, got %d", c.Physics.MaxJumps)
	case c.Physics.AirControl < 0 || c.Physics.AirControl > 1:
		return fmt.Errorf("config: physics.air_control must be in [0, 1], got %v", c.Physics.AirControl)
	case c.Physics.AirFriction > c.Physics.GroundFriction:
		return fmt.Errorf("config: physics.air_friction (%v) exceeds ground_friction (%v)",
			c.Physics.AirFriction, c.Physics.GroundFriction)
	case c.Player.Radius <= 0 || c.Player.HalfHeight <= 0:
		return fmt.Errorf("config: player radius and half_height must be positive")
	case c.Collision.Boundary <= 0:
		return fmt.Errorf("config: collision.boundary must be positive, got %v", c.Collision.Boundary)
	case c.Water.Shallow.MaxDepth > c.Water.Medium.MaxDepth:
		return fmt.Errorf("config: water.shallow.max_depth exceeds water.medium.max_depth")
	}
	return nil
}
