package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/talentd",
		"workers": 4,
		"trending_skills": ["rust", "kubernetes"],
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/talentd", cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"rust", "kubernetes"}, cfg.TrendingSkills)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{ invalid json }`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"valid", Config{Port: 8080, Workers: 8}, false},
		{"negative port", Config{Port: -1}, true},
		{"port too large", Config{Port: 70000}, true},
		{"negative workers", Config{Workers: -2}, true},
		{"empty trending entry", Config{TrendingSkills: []string{"go", ""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:           8080,
		DatabaseURL:    "postgres://localhost/talentd",
		Workers:        2,
		TrendingSkills: []string{"go"},
	}

	merged := (&Config{Port: 9000}).MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port, "explicit value wins")
	assert.Equal(t, "postgres://localhost/talentd", merged.DatabaseURL)
	assert.Equal(t, 2, merged.Workers)
	assert.Equal(t, []string{"go"}, merged.TrendingSkills)
}
