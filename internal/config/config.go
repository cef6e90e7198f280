// Package config loads YAML descriptions of custom potential stacks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/galpot/internal/potential"
)

// Component names one library model with parameter overrides.
type Component struct {
	Model  string             `yaml:"model"`
	Params map[string]float64 `yaml:"params"`
}

// Set is a named stack of components, e.g.:
//
//	name: mw-with-cluster
//	components:
//	  - model: MWPotential2014
//	  - model: PlummerPotential
//	    params: {amp: 1.11072675e-8, b: 0.000125}
type Set struct {
	Name       string      `yaml:"name"`
	Components []Component `yaml:"components"`
}

func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if len(s.Components) == 0 {
		return nil, fmt.Errorf("config: no components in %s", path)
	}
	return &s, nil
}

func Save(path string, s *Set) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build resolves every component through the library registry, in file
// order. Combined models contribute all their instances.
func (s *Set) Build() ([]potential.Potential, error) {
	var comps []potential.Potential
	for _, c := range s.Components {
		ps, err := potential.New(c.Model, c.Params)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Model, err)
		}
		comps = append(comps, ps...)
	}
	return comps, nil
}
