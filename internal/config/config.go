package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"ebichart/internal/common"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	DataSource      string       `yaml:"data_source"`
	Window          WindowConfig `yaml:"window"`
	DefaultCoin     string       `yaml:"default_coin"`
	DefaultMetric   string       `yaml:"default_metric"`
	TransitionMs    int          `yaml:"transition_ms"`
	YTicks          int          `yaml:"y_ticks"`
	FetchTimeoutSec int          `yaml:"fetch_timeout_sec"`
	StateFile       string       `yaml:"state_file"`
	LogLevel        string       `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataSource:    common.DefaultDataSource,
		DefaultCoin:   common.DefaultCoin,
		DefaultMetric: common.DefaultMetric,
		LogLevel:      common.DefaultLogLevel,
	}
}

// LoadConfig decodes the YAML file at path over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadOrDefault is LoadConfig, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv loads .env files (if any) and lets the environment override the
// file. A missing .env is fine; an unreadable or malformed one is an error.
func (c *Config) ApplyEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v := os.Getenv(common.EnvDataSource); v != "" {
		c.DataSource = v
	}
	if v := os.Getenv(common.EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(common.EnvStateFile); v != "" {
		c.StateFile = v
	}
	return nil
}

func (c *Config) GetDataSource() string {
	if c.DataSource == "" {
		return common.DefaultDataSource
	}
	return c.DataSource
}

func (c *Config) GetTransition() time.Duration {
	if c.TransitionMs <= 0 {
		return time.Duration(common.DefaultTransitionMs) * time.Millisecond
	}
	return time.Duration(c.TransitionMs) * time.Millisecond
}

func (c *Config) GetYTicks() int {
	if c.YTicks <= 0 {
		return common.DefaultYTicks
	}
	return c.YTicks
}

func (c *Config) GetFetchTimeout() time.Duration {
	if c.FetchTimeoutSec <= 0 {
		return common.DefaultFetchTimeout
	}
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

func (c *Config) GetWindowSize() (int, int) {
	w, h := c.Window.Width, c.Window.Height
	if w <= 0 {
		w = common.DefaultWindowWidth
	}
	if h <= 0 {
		h = common.DefaultWindowHeight
	}
	return w, h
}

func (c *Config) GetWindowTitle() string {
	if c.Window.Title == "" {
		return common.DefaultWindowTitle
	}
	return c.Window.Title
}
