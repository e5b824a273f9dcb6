package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/diegoclair/crew-planner/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. PLANNER_HTTP__PORT.
const EnvPrefix = "PLANNER_"

type Config struct {
	DatabasePath string          `koanf:"database_path"`
	HTTP         HTTPConfig      `koanf:"http"`
	Trucks       []string        `koanf:"trucks"`
	Slack        SlackConfig     `koanf:"slack"`
	Roster       RosterConfig    `koanf:"roster"`
	Directory    DirectoryConfig `koanf:"directory"`
}

type HTTPConfig struct {
	Port            string  `koanf:"port"`
	RateLimitPerSec float64 `koanf:"rate_limit_per_sec"`
	RateLimitBurst  int     `koanf:"rate_limit_burst"`
}

type SlackConfig struct {
	BotToken      string `koanf:"bot_token"`
	SigningSecret string `koanf:"signing_secret"`
}

// RosterConfig controls the weekly crew roster posted to Slack.
type RosterConfig struct {
	Enabled   bool   `koanf:"enabled"`
	ChannelID string `koanf:"channel_id"`
	Weekday   int    `koanf:"weekday"` // ISO weekday, 1 = Monday
	Time      string `koanf:"time"`    // HH:MM
	Timezone  string `koanf:"timezone"`
}

type DirectoryConfig struct {
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// Load reads an optional YAML file and then applies PLANNER_ environment
// overrides. Nested keys use a double underscore: PLANNER_SLACK__BOT_TOKEN.
// PLANNER_TRUCKS is a comma separated list.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".yaml" && ext != ".yml" {
				return nil, fmt.Errorf("unsupported config format: %s", ext)
			}
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		if key == "trucks" {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills unset values.
func (c *Config) SetDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = "./planner.db"
	}
	if c.HTTP.Port == "" {
		c.HTTP.Port = "3000"
	}
	if c.HTTP.RateLimitPerSec <= 0 {
		c.HTTP.RateLimitPerSec = 10
	}
	if c.HTTP.RateLimitBurst <= 0 {
		c.HTTP.RateLimitBurst = 20
	}
	if c.Roster.Weekday == 0 {
		c.Roster.Weekday = domain.Monday
	}
	if c.Roster.Time == "" {
		c.Roster.Time = "06:30"
	}
	if c.Roster.Timezone == "" {
		c.Roster.Timezone = "Europe/Stockholm"
	}
	if c.Directory.CacheTTL <= 0 {
		c.Directory.CacheTTL = 10 * time.Minute
	}
	trucks := c.Trucks[:0]
	for _, t := range c.Trucks {
		if t = strings.TrimSpace(t); t != "" {
			trucks = append(trucks, t)
		}
	}
	c.Trucks = trucks
}

// Validate checks values that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.Roster.Weekday < domain.Monday || c.Roster.Weekday > domain.Sunday {
		return fmt.Errorf("roster.weekday must be between 1 and 7, got %d", c.Roster.Weekday)
	}
	if _, err := time.Parse("15:04", c.Roster.Time); err != nil {
		return fmt.Errorf("roster.time must be HH:MM, got %q", c.Roster.Time)
	}
	if _, err := time.LoadLocation(c.Roster.Timezone); err != nil {
		return fmt.Errorf("roster.timezone: %w", err)
	}
	if c.Roster.Enabled && (c.Roster.ChannelID == "" || c.Slack.BotToken == "") {
		return fmt.Errorf("roster is enabled but slack.bot_token or roster.channel_id is missing")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
