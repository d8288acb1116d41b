package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every EMBER_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"EMBER_DB", "EMBER_LOCATION", "EMBER_WEEK_START", "EMBER_WORK_DAYS",
		"EMBER_CHECKIN_CRON", "EMBER_LOG_CALLS", "EMBER_CONFIG",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "Local", cfg.Location)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, DefaultCheckInCron, cfg.CheckInCron)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, "ember.db", filepath.Base(cfg.DBPath))

	prefs, err := cfg.Preferences()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, prefs.WeekStart)
	assert.Equal(t, domain.DefaultWorkWeek, prefs.DefaultWorkDays)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
db_path: /tmp/ember-test.db
location: Europe/Berlin
week_start: monday
work_days: [mon, tue, wed, thu, fri]
checkin_cron: "30 17 * * 1-5"
log_calls: true
`)

	cfg, err := Load(path, filepath.Join(dir, "none.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ember-test.db", cfg.DBPath)
	assert.Equal(t, "30 17 * * 1-5", cfg.CheckInCron)
	assert.True(t, cfg.LogCalls)

	prefs, err := cfg.Preferences()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", prefs.Location.String())
	assert.Equal(t, time.Monday, prefs.WeekStart)
	assert.False(t, prefs.DefaultWorkDays.Has(time.Sunday))
	assert.True(t, prefs.DefaultWorkDays.Has(time.Friday))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "week_start: monday\nlog_calls: false\n")
	t.Setenv("EMBER_WEEK_START", "saturday")
	t.Setenv("EMBER_LOG_CALLS", "true")
	t.Setenv("EMBER_WORK_DAYS", "sat,sun")
	t.Setenv("EMBER_DB", filepath.Join(dir, "x.db"))

	cfg, err := Load(path, filepath.Join(dir, "none.env"))
	require.NoError(t, err)
	assert.Equal(t, "saturday", cfg.WeekStart)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, []string{"sat", "sun"}, cfg.WorkDays)
	assert.Equal(t, filepath.Join(dir, "x.db"), cfg.DBPath)
}

func TestLoad_DotEnvFillsUnsetVariablesOnly(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "EMBER_CHECKIN_CRON=0 9 * * *\nEMBER_LOCATION=UTC\n")
	t.Setenv("EMBER_LOCATION", "Asia/Tokyo")

	cfg, err := Load(filepath.Join(dir, "none.yaml"), envFile)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("EMBER_CHECKIN_CRON") })

	assert.Equal(t, "0 9 * * *", cfg.CheckInCron)
	assert.Equal(t, "Asia/Tokyo", cfg.Location, "process env wins over .env")
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "work_days: [mon\n")

	_, err := Load(path, filepath.Join(dir, "none.env"))
	assert.Error(t, err)
}

func TestLoad_InvalidLogCalls(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("EMBER_LOG_CALLS", "yes")

	_, err := Load(filepath.Join(dir, "none.yaml"), filepath.Join(dir, "none.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMBER_LOG_CALLS")
}

func TestPreferences_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad location", func(c *Config) { c.Location = "Mars/Olympus" }},
		{"bad week start", func(c *Config) { c.WeekStart = "someday" }},
		{"bad work day", func(c *Config) { c.WorkDays = []string{"mon", "funday"} }},
		{"no work days", func(c *Config) { c.WorkDays = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMBER_CONFIG", "/etc/ember.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ember.yaml", p)

	os.Unsetenv("EMBER_CONFIG")
	home := t.TempDir()
	t.Setenv("HOME", home)
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ember", "config.yaml"), p)
}
