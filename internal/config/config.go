package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odelab/internal/ode"
)

const (
	DefaultModel  = "cubicsine"
	DefaultMethod = "rk4"
	DefaultT0     = 0.0
	DefaultT1     = 10.0
	DefaultPoints = 1000
)

type Config struct {
	Model  string             `yaml:"model"`
	Method string             `yaml:"method"`
	X0     float64            `yaml:"x0"`
	T0     float64            `yaml:"t0"`
	T1     float64            `yaml:"t1"`
	Points int                `yaml:"points"`
	Params map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  DefaultModel,
		Method: DefaultMethod,
		X0:     0.0,
		T0:     DefaultT0,
		T1:     DefaultT1,
		Points: DefaultPoints,
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

// TimeGrid builds the evaluation grid the config describes.
func (c *Config) TimeGrid() []float64 {
	return ode.Linspace(c.T0, c.T1, c.Points)
}

// Validate rejects configs that would produce a useless run. The solvers
// themselves never validate; this guard belongs to the caller side.
func (c *Config) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", c.Points)
	}
	if c.T1 == c.T0 {
		return fmt.Errorf("degenerate interval [%g, %g]", c.T0, c.T1)
	}
	return ode.CheckGrid(c.TimeGrid())
}
