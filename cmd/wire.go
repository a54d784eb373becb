package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/adapters/changelog"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/adapters/cloudflare"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/adapters/telegram"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/application"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/config"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/ports"
)

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	bot    *telegram.Bot
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := cloudflare.New(cfg.CFAPIToken)
	if err != nil {
		return nil, fmt.Errorf("wire record store: %w", err)
	}

	conv := application.NewConversation(
		store,
		changelog.New(cfg.ChangeLogPath),
		ports.SystemClock{},
		cfg.AdminIDs,
		logger,
	)

	bot, err := telegram.New(cfg.BotToken, conv, logger)
	if err != nil {
		return nil, fmt.Errorf("wire telegram bot: %w", err)
	}

	return &app{cfg: cfg, logger: logger, bot: bot}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = lvl
	return logCfg.Build()
}
