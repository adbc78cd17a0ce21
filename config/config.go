package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete pipeline configuration.
type Config struct {
	Data    DataConfig    `json:"data" yaml:"data"`
	Split   SplitConfig   `json:"split" yaml:"split"`
	Sampler SamplerConfig `json:"sampler" yaml:"sampler"`
	Model   ModelConfig   `json:"model" yaml:"model"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// DataConfig names the input tables and the submission destination.
type DataConfig struct {
	TrainPath      string `json:"train_path" yaml:"train_path"`
	TestPath       string `json:"test_path" yaml:"test_path"`
	SubmissionPath string `json:"submission_path" yaml:"submission_path"`
}

// SplitConfig controls the stratified train/validation partition.
type SplitConfig struct {
	TrainRatio float64 `json:"train_ratio" yaml:"train_ratio"`
	Seed       int64   `json:"seed" yaml:"seed"`
}

// SamplerConfig controls minority oversampling.
type SamplerConfig struct {
	Neighbors int   `json:"neighbors" yaml:"neighbors"`
	Seed      int64 `json:"seed" yaml:"seed"`
}

// ModelConfig holds the boosting hyperparameters. Fixed constants per run;
// there is no search loop.
type ModelConfig struct {
	Trees        int     `json:"trees" yaml:"trees"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
	MaxDepth     int     `json:"max_depth" yaml:"max_depth"`
	Seed         int64   `json:"seed" yaml:"seed"`
	Threshold    float64 `json:"threshold" yaml:"threshold"`
}

// JournalConfig contains run-journaling parameters.
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Data.TrainPath == "" {
		return fmt.Errorf("data.train_path is required")
	}
	if c.Data.TestPath == "" {
		return fmt.Errorf("data.test_path is required")
	}
	if c.Data.SubmissionPath == "" {
		return fmt.Errorf("data.submission_path is required")
	}
	if c.Split.TrainRatio <= 0 || c.Split.TrainRatio >= 1 {
		return fmt.Errorf("split.train_ratio must be between 0 and 1")
	}
	if c.Sampler.Neighbors <= 0 {
		return fmt.Errorf("sampler.neighbors must be positive")
	}
	if c.Model.Trees <= 0 {
		return fmt.Errorf("model.trees must be positive")
	}
	if c.Model.LearningRate <= 0 || c.Model.LearningRate > 1 {
		return fmt.Errorf("model.learning_rate must be between 0 and 1")
	}
	if c.Model.MaxDepth <= 0 {
		return fmt.Errorf("model.max_depth must be positive")
	}
	if c.Model.Threshold <= 0 || c.Model.Threshold >= 1 {
		return fmt.Errorf("model.threshold must be between 0 and 1")
	}
	switch c.Journal.Type {
	case "csv", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s journal", c.Journal.Type)
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			TrainPath:      "./fraudTrain.csv",
			TestPath:       "./fraudTest.csv",
			SubmissionPath: "./submission.csv",
		},
		Split: SplitConfig{
			TrainRatio: 0.8,
			Seed:       42,
		},
		Sampler: SamplerConfig{
			Neighbors: 5,
			Seed:      42,
		},
		Model: ModelConfig{
			Trees:        100,
			LearningRate: 0.1,
			MaxDepth:     6,
			Seed:         42,
			Threshold:    0.5,
		},
		Journal: JournalConfig{
			Type: "csv",
			Path: "./runs.csv",
		},
	}
}
