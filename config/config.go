package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Canvas    CanvasSpec    `yaml:"canvas"`
	Placement PlacementSpec `yaml:"placement"`
	Script    ScriptSpec    `yaml:"script"`
	Bundle    BundleSpec    `yaml:"bundle"`
}

type CanvasSpec struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	RefreshMS int `yaml:"refresh_ms"`
}

// RefreshInterval is the time between canvas redraws.
func (c CanvasSpec) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMS) * time.Millisecond
}

// PlacementSpec is where a newly added sprite appears and how big it is.
type PlacementSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ScriptSpec struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Caption      string `yaml:"caption"`
	FPS          int    `yaml:"fps"`
	Background   [3]int `yaml:"background"`
}

type BundleSpec struct {
	Host       string   `yaml:"host"`
	Name       string   `yaml:"name"`
	Identifier string   `yaml:"identifier"`
	Version    string   `yaml:"version"`
	Packages   []string `yaml:"packages"`
	Excludes   []string `yaml:"excludes"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return parse(defaultYAML, "default.yaml")
}

// Load reads the configuration at path on top of the embedded defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte, name string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return &cfg, nil
}

// Validate rejects values the editor cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Canvas.RefreshMS <= 0 {
		errs = append(errs, fmt.Errorf("canvas refresh_ms %d must be positive", c.Canvas.RefreshMS))
	}
	if c.Placement.Width <= 0 || c.Placement.Height <= 0 {
		errs = append(errs, fmt.Errorf("placement size %dx%d must be positive", c.Placement.Width, c.Placement.Height))
	}
	if c.Script.WindowWidth <= 0 || c.Script.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("script window %dx%d must be positive", c.Script.WindowWidth, c.Script.WindowHeight))
	}
	if c.Script.FPS <= 0 {
		errs = append(errs, fmt.Errorf("script fps %d must be positive", c.Script.FPS))
	}
	for _, v := range c.Script.Background {
		if v < 0 || v > 255 {
			errs = append(errs, fmt.Errorf("script background %v out of range", c.Script.Background))
			break
		}
	}
	if c.Bundle.Host == "" {
		errs = append(errs, errors.New("bundle host is empty"))
	}
	if c.Bundle.Name == "" || c.Bundle.Identifier == "" || c.Bundle.Version == "" {
		errs = append(errs, errors.New("bundle name, identifier and version are required"))
	}
	return errors.Join(errs...)
}
