package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "123:telegram-token")
	t.Setenv("CF_API_TOKEN", "cf-token")
	t.Setenv("ADMIN_IDS", "42")
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_IDS", "42, 1001 ,7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHANGELOG_PATH", "/var/log/cfbot/changes.log")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "123:telegram-token", cfg.BotToken)
	assert.Equal(t, "cf-token", cfg.CFAPIToken)
	assert.Equal(t, []int64{42, 1001, 7}, cfg.AdminIDs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/cfbot/changes.log", cfg.ChangeLogPath)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "changes.log", cfg.ChangeLogPath)
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{"bot token", "BOT_TOKEN", "BOT_TOKEN is required"},
		{"cloudflare token", "CF_API_TOKEN", "CF_API_TOKEN is required"},
		{"admin ids", "ADMIN_IDS", "ADMIN_IDS is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsBadAdminID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_IDS", "42,not-a-number")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.EqualError(t, err, `invalid admin id "not-a-number"`)
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"single", "42", []int64{42}},
		{"spaces and trailing comma", " 42 , 7 ,", []int64{42, 7}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAdminIDs(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
