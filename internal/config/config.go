// Package config resolves ember settings from defaults, an optional YAML
// file, an optional .env file and EMBER_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DBPath      string   `yaml:"db_path"`
	Location    string   `yaml:"location"`
	WeekStart   string   `yaml:"week_start"`
	WorkDays    []string `yaml:"work_days"`
	CheckInCron string   `yaml:"checkin_cron"`
	LogCalls    bool     `yaml:"log_calls"`
}

// DefaultCheckInCron prompts at 18:00 every day.
const DefaultCheckInCron = "0 18 * * *"

// Default returns a Config with sensible defaults. DBPath is left empty and
// resolved against the home directory by DataDir.
func Default() Config {
	return Config{
		Location:    "Local",
		WeekStart:   "sunday",
		WorkDays:    []string{"sun", "mon", "tue", "wed", "thu"},
		CheckInCron: DefaultCheckInCron,
	}
}

// DataDir is ~/.ember.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".ember"), nil
}

// DefaultPath returns EMBER_CONFIG or ~/.ember/config.yaml.
func DefaultPath() (string, error) {
	if v := os.Getenv("EMBER_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML file at path (a missing file is fine), loads
// envFiles (default ".env", missing files ignored) and applies EMBER_*
// overrides. Variables already set in the process environment are never
// replaced by .env values.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = filepath.Join(dir, "ember.db")
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("EMBER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("EMBER_LOCATION"); v != "" {
		cfg.Location = v
	}
	if v := os.Getenv("EMBER_WEEK_START"); v != "" {
		cfg.WeekStart = v
	}
	if v := os.Getenv("EMBER_WORK_DAYS"); v != "" {
		cfg.WorkDays = strings.Split(v, ",")
	}
	if v := os.Getenv("EMBER_CHECKIN_CRON"); v != "" {
		cfg.CheckInCron = v
	}
	if v := os.Getenv("EMBER_LOG_CALLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EMBER_LOG_CALLS %q: expected true or false: %w", v, err)
		}
		cfg.LogCalls = b
	}
	return nil
}

// Validate checks that every field parses.
func (c *Config) Validate() error {
	_, err := c.Preferences()
	return err
}

// Preferences converts the textual settings into the typed values the
// services take.
func (c *Config) Preferences() (app.Preferences, error) {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return app.Preferences{}, fmt.Errorf("location %q: %w", c.Location, err)
	}
	start, err := domain.ParseWeekday(c.WeekStart)
	if err != nil {
		return app.Preferences{}, fmt.Errorf("week_start: %w", err)
	}
	work, err := domain.ParseWorkWeek(strings.Join(c.WorkDays, ","))
	if err != nil {
		return app.Preferences{}, fmt.Errorf("work_days: %w", err)
	}
	if len(work.Days()) == 0 {
		return app.Preferences{}, fmt.Errorf("work_days must name at least one day")
	}
	return app.Preferences{
		Location:        loc,
		WeekStart:       start,
		DefaultWorkDays: work,
	}, nil
}
