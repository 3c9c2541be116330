package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNoise        = 0.01
	DefaultLearningRate = 0.4
	DefaultSteps        = 100
	DefaultDataDir      = ".qcamp"
)

// Config drives the exploratory subcommands: noise strength, fold scales
// and optimizer settings.
type Config struct {
	DataDir   string          `yaml:"data_dir"`
	Noise     NoiseConfig     `yaml:"noise"`
	ZNE       ZNEConfig       `yaml:"zne"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
}

type NoiseConfig struct {
	// P is the depolarizing strength applied per wire after every gate.
	P float64 `yaml:"p"`
}

type ZNEConfig struct {
	// ScaleFactors are the fold scales; each must be an odd positive integer.
	ScaleFactors []int `yaml:"scale_factors"`
}

type OptimizerConfig struct {
	LearningRate float64 `yaml:"learning_rate"`
	Steps        int     `yaml:"steps"`
	Theta0       float64 `yaml:"theta0"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Noise:   NoiseConfig{P: DefaultNoise},
		ZNE:     ZNEConfig{ScaleFactors: []int{1, 3, 5}},
		Optimizer: OptimizerConfig{
			LearningRate: DefaultLearningRate,
			Steps:        DefaultSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
