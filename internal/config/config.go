package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/focusdash/internal/timer"
)

// DefaultFileName is looked up in the working directory when no config
// path is given.
const DefaultFileName = "dash.yaml"

// Config represents the application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Timer   TimerConfig   `yaml:"timer"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // json, sqlite or memory
	Path    string `yaml:"path,omitempty"`
	Watch   *bool  `yaml:"watch,omitempty"` // reload the TUI when the data file changes
}

type TimerConfig struct {
	WorkMinutes  int `yaml:"work_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
}

type UIConfig struct {
	Theme string `yaml:"theme"` // classic, neon or mono
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{Backend: "json"},
		Timer: TimerConfig{
			WorkMinutes:  int(timer.DefaultWork / time.Minute),
			BreakMinutes: int(timer.DefaultBreak / time.Minute),
		},
		UI:  UIConfig{Theme: "classic"},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Load builds the configuration from, in increasing precedence: defaults,
// the YAML file, .env files and DASH_* environment variables.
//
// An explicit path that does not exist is an error; a missing default file
// is not.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("configuration file not found: %s", path)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFiles reads .env and .env.local if present. Variables already set
// in the process environment win.
func loadEnvFiles() {
	for _, p := range []string{".env", ".env.local"} {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

func applyEnv(cfg *Config) error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(name string, dst *int) error {
		v, ok := os.LookupEnv(name)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: not a number: %q", name, v)
		}
		*dst = n
		return nil
	}

	str("DASH_BACKEND", &cfg.Storage.Backend)
	str("DASH_DATA", &cfg.Storage.Path)
	str("DASH_THEME", &cfg.UI.Theme)
	str("DASH_LOG_LEVEL", &cfg.Log.Level)
	str("DASH_LOG_FORMAT", &cfg.Log.Format)
	str("DASH_LOG_FILE", &cfg.Log.File)
	if err := num("DASH_WORK_MINUTES", &cfg.Timer.WorkMinutes); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("DASH_WATCH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DASH_WATCH: %w", err)
		}
		cfg.Storage.Watch = &b
	}
	return num("DASH_BREAK_MINUTES", &cfg.Timer.BreakMinutes)
}

func (c *Config) normalize() {
	d := Default()
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = d.Storage.Backend
	}
	if c.Timer.WorkMinutes == 0 {
		c.Timer.WorkMinutes = d.Timer.WorkMinutes
	}
	if c.Timer.BreakMinutes == 0 {
		c.Timer.BreakMinutes = d.Timer.BreakMinutes
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want json, sqlite or memory)", c.Storage.Backend)
	}
	if c.Timer.WorkMinutes < 0 || c.Timer.BreakMinutes < 0 {
		return fmt.Errorf("timer: durations must be positive (work=%d, break=%d)", c.Timer.WorkMinutes, c.Timer.BreakMinutes)
	}
	switch c.UI.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q (want classic, neon or mono)", c.UI.Theme)
	}
	return nil
}

// WatchEnabled reports whether the TUI should follow external writes.
// On by default for the JSON backend, which is the only one watched.
func (c *Config) WatchEnabled() bool {
	if c.Storage.Backend != "json" {
		return false
	}
	return c.Storage.Watch == nil || *c.Storage.Watch
}

func (c *Config) WorkDuration() time.Duration {
	return time.Duration(c.Timer.WorkMinutes) * time.Minute
}

func (c *Config) BreakDuration() time.Duration {
	return time.Duration(c.Timer.BreakMinutes) * time.Minute
}
