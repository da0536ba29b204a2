package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/epiroc/epiroc/roc"
)

// SweepConfig represents a sweep YAML file.
// Unknown keys are rejected so that typos surface as errors.
// An empty Recipes list means every recipe. CurveDir and DB are optional:
// CurveDir receives one CSV per recipe and defined time, DB records every report.
type SweepConfig struct {
	Dataset   string   `yaml:"dataset"`
	Posterior string   `yaml:"posterior"`
	Instance  int      `yaml:"instance"`
	Times     []int    `yaml:"times"`
	Recipes   []string `yaml:"recipes"`
	CurveDir  string   `yaml:"curve_dir"`
	DB        string   `yaml:"db"`
}

// LoadSweepConfig reads a sweep configuration with strict field checking.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep config: %w", err)
	}
	var cfg SweepConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing sweep config: %w", err)
	}
	if len(cfg.Recipes) == 0 {
		cfg.Recipes = roc.RecipeNames()
	}
	return &cfg, nil
}

// Validate checks paths, times and recipe names.
func (c *SweepConfig) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset must be set")
	}
	if c.Posterior == "" {
		return fmt.Errorf("posterior must be set")
	}
	if c.Instance < 0 {
		return fmt.Errorf("instance must be non-negative, got %d", c.Instance)
	}
	if len(c.Times) == 0 {
		return fmt.Errorf("at least one time required")
	}
	for i, t := range c.Times {
		if t < 0 {
			return fmt.Errorf("times[%d] must be non-negative, got %d", i, t)
		}
	}
	for _, name := range c.Recipes {
		if !roc.IsValidRecipe(name) {
			return fmt.Errorf("unknown recipe %q; valid: %v", name, roc.RecipeNames())
		}
	}
	return nil
}
