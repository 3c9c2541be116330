package config

import "sort"

// Presets are ready-made noise/mitigation settings for the exploratory
// commands, keyed by preset name.
var Presets = map[string]*Config{
	"ideal": {
		DataDir:   DefaultDataDir,
		Noise:     NoiseConfig{P: 0},
		ZNE:       ZNEConfig{ScaleFactors: []int{1, 3, 5}},
		Optimizer: OptimizerConfig{LearningRate: DefaultLearningRate, Steps: DefaultSteps},
	},
	"light": {
		DataDir:   DefaultDataDir,
		Noise:     NoiseConfig{P: 0.01},
		ZNE:       ZNEConfig{ScaleFactors: []int{1, 3, 5}},
		Optimizer: OptimizerConfig{LearningRate: DefaultLearningRate, Steps: DefaultSteps},
	},
	"heavy": {
		DataDir:   DefaultDataDir,
		Noise:     NoiseConfig{P: 0.04},
		ZNE:       ZNEConfig{ScaleFactors: []int{1, 3, 5}},
		Optimizer: OptimizerConfig{LearningRate: DefaultLearningRate, Steps: DefaultSteps},
	},
	"deep-fold": {
		DataDir:   DefaultDataDir,
		Noise:     NoiseConfig{P: 0.02},
		ZNE:       ZNEConfig{ScaleFactors: []int{1, 3, 5, 7, 9}},
		Optimizer: OptimizerConfig{LearningRate: DefaultLearningRate, Steps: DefaultSteps},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
