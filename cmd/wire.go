package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/D-C-Legacy/ad-admin/internal/adapters/repo/memory"
	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/ports"
	"github.com/D-C-Legacy/ad-admin/internal/synth"
	"github.com/spf13/viper"
)

const (
	configDirName        = ".adadmin"
	seedKey              = "synth.seed"
	creativePoolKey      = "synth.creative_pool_size"
	referenceDateKey     = "dashboard.reference_date"
	defaultReferenceDate = "2026-02-06"
)

type app struct {
	service *application.Service
	clock   ports.Clock
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	if homeDir, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	}
	cfg.SetEnvPrefix("ADADMIN")
	cfg.AutomaticEnv()
	cfg.SetDefault(seedKey, 42)
	cfg.SetDefault(creativePoolKey, 60)
	cfg.SetDefault(referenceDateKey, defaultReferenceDate)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	refDate, err := time.Parse("2006-01-02", cfg.GetString(referenceDateKey))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", referenceDateKey, err)
	}

	synthCfg := synth.DefaultConfig()
	synthCfg.Seed = cfg.GetUint32(seedKey)
	synthCfg.CreativePoolSize = cfg.GetInt(creativePoolKey)

	store := memory.NewStore(synth.NewSynthesizer(synthCfg).Build())
	clock := ports.SystemClock{}

	service := application.NewService(
		store.Accounts(),
		store.Campaigns(),
		store.AdGroups(),
		store.Creatives(),
		clock,
		application.Config{ReferenceDate: refDate},
	)

	return &app{service: service, clock: clock}, nil
}
