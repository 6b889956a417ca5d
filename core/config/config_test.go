package config_test

import (
	"testing"

	"library-sync/core/config"
	"library-sync/core/notion"
	"library-sync/core/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	full := config.Config{
		Steam:  steam.Config{APIKey: "key", AccountID: "76561198000000000"},
		Notion: notion.Config{Token: "secret", DatabaseID: "db"},
	}

	tests := []struct {
		name        string
		mutate      func(*config.Config)
		wantMissing []string
	}{
		{
			name:   "complete configuration",
			mutate: func(c *config.Config) {},
		},
		{
			name:        "missing steam api key",
			mutate:      func(c *config.Config) { c.Steam.APIKey = "" },
			wantMissing: []string{"STEAM_API_KEY"},
		},
		{
			name:        "missing notion credentials",
			mutate:      func(c *config.Config) { c.Notion = notion.Config{} },
			wantMissing: []string{"NOTION_TOKEN", "NOTION_DATABASE_ID"},
		},
		{
			name:   "everything missing is enumerated",
			mutate: func(c *config.Config) { *c = config.Config{} },
			wantMissing: []string{
				"STEAM_API_KEY", "STEAM_ACCOUNT_ID", "NOTION_TOKEN", "NOTION_DATABASE_ID",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full
			tt.mutate(&cfg)

			err := cfg.Validate()
			if len(tt.wantMissing) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, name := range tt.wantMissing {
				assert.Contains(t, err.Error(), name)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "env-key")
	t.Setenv("NOTION_DATABASE_ID", "env-db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Steam.APIKey)
	assert.Equal(t, "env-db", cfg.Notion.DatabaseID)
	assert.Equal(t, "debug", cfg.Log.Level)
}
