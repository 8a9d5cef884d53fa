package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const DefaultPath = "configs/scenarios.yaml"

// LoadScenarios reads the scenario file named by SCENARIOS_CONFIG_PATH,
// falling back to DefaultPath.
func LoadScenarios() (*File, error) {
	path := os.Getenv("SCENARIOS_CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	return LoadFile(path)
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a single scenario document, applies defaults and validates it.
func Parse(data []byte) (*File, error) {
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := Prepare(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Prepare applies defaults and validates a decoded document.
func Prepare(cfg *File) error {
	applyDefaults(cfg)
	return cfg.Validate()
}

func applyDefaults(cfg *File) {
	if cfg.Defaults.Variant == "" {
		cfg.Defaults.Variant = VariantDeque
	}
	for i := range cfg.Scenarios {
		if cfg.Scenarios[i].Variant == "" {
			cfg.Scenarios[i].Variant = cfg.Defaults.Variant
		}
	}
}

func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return errors.New("no scenarios configured")
	}
	if !IsVariant(f.Defaults.Variant) {
		return fmt.Errorf("unknown default variant %q", f.Defaults.Variant)
	}

	seen := make(map[string]bool, len(f.Scenarios))
	for i, sc := range f.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: missing name", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true

		if err := sc.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return nil
}

func (s Scenario) Validate() error {
	if !IsVariant(s.Variant) {
		return fmt.Errorf("unknown variant %q", s.Variant)
	}
	if len(s.Steps) == 0 {
		return errors.New("no steps")
	}
	for i, st := range s.Steps {
		if !ops[st.Op] {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
		if st.Absent && st.Expect != nil {
			return fmt.Errorf("step %d: expect and absent are mutually exclusive", i)
		}
		if st.ExpectAll != nil && st.Op != OpDrain {
			return fmt.Errorf("step %d: expect_all only applies to %s", i, OpDrain)
		}
	}
	return nil
}
