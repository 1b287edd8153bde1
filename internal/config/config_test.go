package config

import (
	"testing"
	"time"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `timezone: Europe/Berlin
date_format: "02.01.2006"
include:
  - "*.json"
  - "exports/*.mpxj.json"
columns:
  tasks: [id, name, start, finish]
  resource: [name, max_units]
templates: reports
`

func TestLoad_WalksUp(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/.mpxj.yaml", []byte(sampleConfig))
	fs.AddDir("/workspace/plans/2024")

	cfg, err := Load(fs, "/workspace/plans/2024")
	require.NoError(t, err)

	require.Equal(t, "/workspace/.mpxj.yaml", cfg.Path)
	require.Equal(t, "/workspace", cfg.Dir())
	require.Equal(t, "Europe/Berlin", cfg.Timezone)
	require.Equal(t, "02.01.2006", cfg.DateFormat)
	require.Equal(t, []string{"*.json", "exports/*.mpxj.json"}, cfg.Include)
	require.Equal(t, []string{"id", "name", "start", "finish"}, cfg.ColumnsFor(schema.EntityTask))
	require.Equal(t, []string{"name", "max_units"}, cfg.ColumnsFor(schema.EntityResource))
	require.Nil(t, cfg.ColumnsFor(schema.EntityAssignment))
	require.Equal(t, "/workspace/reports", cfg.TemplatesDir())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoad_Defaults(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	cfg, err := Load(fs, "/workspace")
	require.NoError(t, err)
	require.Equal(t, "", cfg.Path)
	require.Equal(t, "", cfg.Dir())
	require.Equal(t, DefaultDateFormat, cfg.DateFormat)
	require.Equal(t, []string{"*.json"}, cfg.Include)
	require.Equal(t, "", cfg.TemplatesDir())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvTimezone, "Asia/Tokyo")
	t.Setenv(EnvDateFormat, "2006/01/02")

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/.mpxj.yaml", []byte(sampleConfig))

	cfg, err := Load(fs, "/workspace")
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", cfg.Timezone)
	require.Equal(t, "2006/01/02", cfg.DateFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad timezone", "timezone: Mars/Olympus\n", "invalid timezone"},
		{"bad pattern", "include: [\"[\"]\n", "invalid include pattern"},
		{"bad entity", "columns:\n  calendars: [name]\n", "invalid columns entry"},
		{"unknown key", "colour: blue\n", "failed to parse"},
		{"bad yaml", "timezone: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			fs.AddFile("/workspace/.mpxj.yaml", []byte(tt.content))

			_, err := Load(fs, "/workspace")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestConfig_ApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{EnvTimezone: "  ", EnvDateFormat: "15:04"}

	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	require.Equal(t, "", cfg.Timezone)
	require.Equal(t, "15:04", cfg.DateFormat)
}
