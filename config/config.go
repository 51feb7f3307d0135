// Package config reads the program settings from FRACTALS_* environment
// variables, optionally layered over a YAML file.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/fractals/logging"
	"github.com/scottkirkwood/fractals/style"
)

const prefix = "fractals"

// Theme picks the surface colours
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type Config struct {
	Name      string `envconfig:"NAME" default:"Fractals"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogDir    string `envconfig:"LOG_DIR"`
	Theme     Theme  `envconfig:"THEME" default:"light"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`
	Width     int    `envconfig:"WIDTH" default:"900"`
	Height    int    `envconfig:"HEIGHT" default:"550"`
	// Strict panics on engine invariant violations instead of recovering
	Strict bool `envconfig:"STRICT" default:"false"`
}

// Load reads the environment and checks the values
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// file mirrors Config for YAML. Pointers tell unset keys apart from zero
// values.
type file struct {
	Name      *string `yaml:"name"`
	LogLevel  *string `yaml:"log_level"`
	LogDir    *string `yaml:"log_dir"`
	Theme     *Theme  `yaml:"theme"`
	OutputDir *string `yaml:"output_dir"`
	Width     *int    `yaml:"width"`
	Height    *int    `yaml:"height"`
	Strict    *bool   `yaml:"strict"`
}

// LoadFile reads the YAML file at path, then the environment. Environment
// variables win over the file, which wins over the defaults. An empty path
// is the same as Load.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, err
	}
	setString(&cfg.Name, f.Name, "NAME")
	setString(&cfg.LogLevel, f.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogDir, f.LogDir, "LOG_DIR")
	setString(&cfg.OutputDir, f.OutputDir, "OUTPUT_DIR")
	if f.Theme != nil && !inEnv("THEME") {
		cfg.Theme = *f.Theme
	}
	if f.Width != nil && !inEnv("WIDTH") {
		cfg.Width = *f.Width
	}
	if f.Height != nil && !inEnv("HEIGHT") {
		cfg.Height = *f.Height
	}
	if f.Strict != nil && !inEnv("STRICT") {
		cfg.Strict = *f.Strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func inEnv(key string) bool {
	_, ok := os.LookupEnv(strings.ToUpper(prefix) + "_" + key)
	return ok
}

func setString(dst *string, v *string, key string) {
	if v != nil && !inEnv(key) {
		*dst = *v
	}
}

// Validate checks the enumerated and numeric settings
func (c *Config) Validate() error {
	c.Theme = Theme(strings.ToLower(string(c.Theme)))
	if c.Theme != Light && c.Theme != Dark {
		return fmt.Errorf("theme %q undefined, want light or dark", c.Theme)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bad surface size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Level returns the parsed log level, info if it does not parse
func (c *Config) Level() slog.Level {
	l, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Colors returns the background and foreground colours for the theme
func (c *Config) Colors() (bg, fg color.RGBA) {
	if c.Theme == Dark {
		return color.RGBA{27, 27, 27, 255}, style.White
	}
	return style.White, style.Black
}
