package schema

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Load parses a view definition document. YAML and JSON are both accepted;
// the document is validated before being returned.
func Load(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.UnmarshalStrict(data, &def); err != nil {
		return nil, fmt.Errorf("parsing view definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadConfig parses a share configuration document (YAML or JSON).
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing share configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a view definition from a local path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading view definition: %w", err)
	}
	return Load(data)
}

// LoadConfigFile reads and parses a share configuration from a local path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading share configuration: %w", err)
	}
	return LoadConfig(data)
}
