package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the bot needs at startup. Values come from the
// environment, optionally overlaid on a cfbot.yaml file in the working
// directory; the environment wins.
type Config struct {
	BotToken      string
	CFAPIToken    string
	AdminIDs      []int64
	LogLevel      string
	ChangeLogPath string
}

var envBindings = map[string]string{
	"bot_token":      "BOT_TOKEN",
	"cf_api_token":   "CF_API_TOKEN",
	"admin_ids":      "ADMIN_IDS",
	"log_level":      "LOG_LEVEL",
	"changelog_path": "CHANGELOG_PATH",
}

// Load reads the configuration and fails fast when a required value is
// absent, so a misconfigured process never reaches the transport.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName("cfbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	v.SetDefault("log_level", "info")
	v.SetDefault("changelog_path", "changes.log")

	cfg := &Config{
		BotToken:      v.GetString("bot_token"),
		CFAPIToken:    v.GetString("cf_api_token"),
		LogLevel:      v.GetString("log_level"),
		ChangeLogPath: v.GetString("changelog_path"),
	}

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is required")
	}
	if cfg.CFAPIToken == "" {
		return nil, errors.New("CF_API_TOKEN is required")
	}

	adminIDs, err := parseAdminIDs(v.GetString("admin_ids"))
	if err != nil {
		return nil, err
	}
	if len(adminIDs) == 0 {
		return nil, errors.New("ADMIN_IDS is required")
	}
	cfg.AdminIDs = adminIDs

	return cfg, nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
