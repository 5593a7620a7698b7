package statix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linchenxuan/statix/stats"
)

// Config is the top-level statix configuration, loaded from YAML.
type Config struct {
	Log    LogConfig      `yaml:"log"`
	Stats  StatsConfig    `yaml:"stats"`
	Plugin map[string]any `yaml:"plugin"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level   string `yaml:"level"`   // zerolog level name; empty means info
	Console bool   `yaml:"console"` // human-readable console output instead of JSON
}

// ClassConfig declares one classification bucket.
type ClassConfig struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
}

// StatsConfig fixes the aggregation engine's enumerations: classification
// buckets and operation types. These are immutable once the engine is built.
type StatsConfig struct {
	AppClasses     []ClassConfig `yaml:"appClasses"`
	ServiceClasses []ClassConfig `yaml:"serviceClasses"`
	AppOpTypes     []string      `yaml:"appOpTypes"`
	ServiceOpTypes []string      `yaml:"serviceOpTypes"`
}

// Spec converts the configuration into the engine's construction spec.
func (c *StatsConfig) Spec() stats.Spec {
	spec := stats.Spec{
		AppOpTypes:     c.AppOpTypes,
		ServiceOpTypes: c.ServiceOpTypes,
	}
	for _, cc := range c.AppClasses {
		spec.AppClasses = append(spec.AppClasses, stats.ClassKey{Name: cc.Name, Desc: cc.Desc})
	}
	for _, cc := range c.ServiceClasses {
		spec.ServiceClasses = append(spec.ServiceClasses, stats.ClassKey{Name: cc.Name, Desc: cc.Desc})
	}
	return spec
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
