// Package config loads game, AI, server and benchmark settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// HostKeyEnv overrides server.host_key_path when set.
const HostKeyEnv = "OUROBOROS_PRIVATE_KEY_PATH"

var ErrInvalid = errors.New("invalid config")

// Config holds all configuration parameters.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	AI     AIConfig     `yaml:"ai"`
	Server ServerConfig `yaml:"server"`
	Bench  BenchConfig  `yaml:"bench"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig holds board and loop settings.
type GameConfig struct {
	GridWidth      int   `yaml:"grid_width"`
	GridHeight     int   `yaml:"grid_height"`
	TickIntervalMs int   `yaml:"tick_interval_ms"`
	GrowthPerFood  int   `yaml:"growth_per_food"`
	Seed           int64 `yaml:"seed"`        // 0 = seed from the clock
	MailboxSize    int   `yaml:"mailbox_size"` // capacity of intent and update mailboxes
}

// AIConfig holds pathfinding settings.
type AIConfig struct {
	Search       string  `yaml:"search"`         // heap or scan
	MinFreeSpace float64 `yaml:"min_free_space"` // floor of the tail-chase space threshold
	GrowthFactor float64 `yaml:"growth_factor"`  // threshold per body segment
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	HostKeyPath         string `yaml:"host_key_path"`
	MaxConnectionsPerIP int    `yaml:"max_connections_per_ip"`
}

// BenchConfig holds headless benchmark settings.
type BenchConfig struct {
	Games    int    `yaml:"games"`
	MaxTicks int    `yaml:"max_ticks"`
	Mode     string `yaml:"mode"`
	Output   string `yaml:"output"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// TickInterval returns the game tick as a duration.
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickIntervalMs) * time.Millisecond
}

// Address returns host:port for the SSH listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from a YAML file, using embedded defaults for
// any values not specified. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if keyPath := os.Getenv(HostKeyEnv); keyPath != "" {
		cfg.Server.HostKeyPath = keyPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. It does not resolve names such as the
// search form, which belong to the packages that use them.
func (c *Config) Validate() error {
	switch {
	case c.Game.GridWidth < 1 || c.Game.GridHeight < 1:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Game.GridWidth, c.Game.GridHeight)
	case c.Game.GridWidth*c.Game.GridHeight < 2:
		return fmt.Errorf("%w: grid needs room for the snake and food", ErrInvalid)
	case c.Game.TickIntervalMs <= 0:
		return fmt.Errorf("%w: tick_interval_ms must be positive", ErrInvalid)
	case c.Game.GrowthPerFood < 1:
		return fmt.Errorf("%w: growth_per_food must be at least 1", ErrInvalid)
	case c.Game.MailboxSize < 1:
		return fmt.Errorf("%w: mailbox_size must be at least 1", ErrInvalid)
	case c.AI.MinFreeSpace < 0 || c.AI.GrowthFactor < 0:
		return fmt.Errorf("%w: ai tunables must not be negative", ErrInvalid)
	case c.Server.Port < 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Server.Port)
	case c.Bench.Games < 0 || c.Bench.MaxTicks < 0:
		return fmt.Errorf("%w: bench counts must not be negative", ErrInvalid)
	}
	return nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
