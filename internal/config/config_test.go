package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./planner.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 1, cfg.Roster.Weekday)
	assert.Equal(t, "06:30", cfg.Roster.Time)
	assert.Equal(t, "Europe/Stockholm", cfg.Roster.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.Directory.CacheTTL)
	assert.False(t, cfg.Roster.Enabled)
	assert.Empty(t, cfg.Trucks)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	data := `database_path: /var/lib/planner.db
http:
  port: "8080"
trucks:
  - Bil 1
  - Bil 2
slack:
  bot_token: xoxb-file
roster:
  channel_id: C123
  time: "07:00"
directory:
  cache_ttl: 2m
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("PLANNER_HTTP__PORT", "9090")
	t.Setenv("PLANNER_ROSTER__ENABLED", "true")
	t.Setenv("PLANNER_SLACK__SIGNING_SECRET", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"database_path", cfg.DatabasePath, "/var/lib/planner.db"},
		{"http.port", cfg.HTTP.Port, "9090"},
		{"trucks", cfg.Trucks, []string{"Bil 1", "Bil 2"}},
		{"slack.bot_token", cfg.Slack.BotToken, "xoxb-file"},
		{"slack.signing_secret", cfg.Slack.SigningSecret, "secret"},
		{"roster.enabled", cfg.Roster.Enabled, true},
		{"roster.channel_id", cfg.Roster.ChannelID, "C123"},
		{"roster.time", cfg.Roster.Time, "07:00"},
		{"directory.cache_ttl", cfg.Directory.CacheTTL, 2 * time.Minute},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_TruckListFromEnv(t *testing.T) {
	t.Setenv("PLANNER_TRUCKS", "Bil 1, Bil 2 ,,Bil 3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bil 1", "Bil 2", "Bil 3"}, cfg.Trucks)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "invalid weekday", env: map[string]string{"PLANNER_ROSTER__WEEKDAY": "9"}},
		{name: "invalid time", env: map[string]string{"PLANNER_ROSTER__TIME": "25:99"}},
		{name: "invalid timezone", env: map[string]string{"PLANNER_ROSTER__TIMEZONE": "Mars/Olympus"}},
		{name: "roster without channel", env: map[string]string{"PLANNER_ROSTER__ENABLED": "true", "PLANNER_SLACK__BOT_TOKEN": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
