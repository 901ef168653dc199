package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// ModelPreset is one selectable model entry from the presets file.
type ModelPreset struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	Note    string `yaml:"note"`
}

type ModelPresets struct {
	Models []ModelPreset `yaml:"models"`
}

func LoadModelPresets(path string) (*ModelPresets, error) {
	var presets ModelPresets
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	err = dec.Decode(&presets)
	return &presets, err
}

// Enabled reports whether the named model is listed and switched on.
func (p *ModelPresets) Enabled(name string) bool {
	for _, m := range p.Models {
		if m.Name == name && m.Enabled {
			return true
		}
	}
	return false
}
