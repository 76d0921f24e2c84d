package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/moodtrace/dailymood/internal/domain/emotion"
)

// Config aggregates runtime configuration used across the tool.
type Config struct {
	Emotion EmotionConfig `yaml:"emotion"`
}

// EmotionConfig controls the daily classification domain.
type EmotionConfig struct {
	Strategy   string  `yaml:"strategy"`
	MinValence float64 `yaml:"minValence"`
	MaxValence float64 `yaml:"maxValence"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EMOTION_STRATEGY"); v != "" {
		cfg.Emotion.Strategy = v
	}
	if v := os.Getenv("EMOTION_MIN_VALENCE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Emotion.MinValence = parsed
		}
	}
	if v := os.Getenv("EMOTION_MAX_VALENCE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Emotion.MaxValence = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		Emotion: EmotionConfig{
			Strategy:   string(emotion.StrategyMostFrequent),
			MinValence: 0,
			MaxValence: 10,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if _, err := emotion.ParseStrategy(c.Emotion.Strategy); err != nil {
		return err
	}
	if c.Emotion.MinValence >= c.Emotion.MaxValence {
		return errors.New("emotion.minValence must be below emotion.maxValence")
	}
	return nil
}

// EmotionDomain converts the raw section into the domain config.
func (c *Config) EmotionDomain() emotion.Config {
	return emotion.Config{
		Strategy:   emotion.Strategy(c.Emotion.Strategy),
		MinValence: c.Emotion.MinValence,
		MaxValence: c.Emotion.MaxValence,
	}
}
