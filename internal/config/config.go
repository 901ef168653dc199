package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"aiupstart.com/code-architect/internal/utils"
)

// Config is the application configuration loaded from YAML. Zero fields
// are filled in from Default so a partial file is fine.
type Config struct {
	BaseURL          string  `yaml:"base_url" json:"base_url"`
	DefaultModel     string  `yaml:"default_model" json:"default_model"`
	FenceTag         string  `yaml:"fence_tag" json:"fence_tag"`
	BuildTemperature float32 `yaml:"build_temperature" json:"build_temperature"`
	DebugTemperature float32 `yaml:"debug_temperature" json:"debug_temperature"`
	MaxTokens        int     `yaml:"max_tokens" json:"max_tokens"`
	MetricsAddr      string  `yaml:"metrics_addr" json:"metrics_addr"`
	ArtifactDir      string  `yaml:"artifact_dir" json:"artifact_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DefaultModel:     "llama-3.3-70b-versatile",
		FenceTag:         "python",
		BuildTemperature: 0.1,
		DebugTemperature: 0.3,
		MaxTokens:        7000,
		MetricsAddr:      ":9091",
		ArtifactDir:      "artifacts",
	}
}

// Load reads a config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = def.DefaultModel
	}
	if cfg.FenceTag == "" {
		cfg.FenceTag = def.FenceTag
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = def.MetricsAddr
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = def.ArtifactDir
	}
}

// Validate checks the loaded configuration and logs each offending field.
func Validate(cfg *Config) error {
	hasErr := false
	if cfg.DefaultModel == "" {
		utils.Logger.Error().Msg("default_model must not be empty")
		hasErr = true
	}
	if cfg.FenceTag == "" {
		utils.Logger.Error().Msg("fence_tag must not be empty")
		hasErr = true
	}
	if cfg.BuildTemperature < 0 || cfg.BuildTemperature > 2 {
		utils.Logger.Error().Float32("build_temperature", cfg.BuildTemperature).
			Msg("build_temperature must be between 0 and 2")
		hasErr = true
	}
	if cfg.DebugTemperature < 0 || cfg.DebugTemperature > 2 {
		utils.Logger.Error().Float32("debug_temperature", cfg.DebugTemperature).
			Msg("debug_temperature must be between 0 and 2")
		hasErr = true
	}
	if cfg.MaxTokens <= 0 {
		utils.Logger.Error().Int("max_tokens", cfg.MaxTokens).
			Msg("max_tokens must be positive")
		hasErr = true
	}
	if hasErr {
		return fmt.Errorf("invalid config: see above errors")
	}
	return nil
}
