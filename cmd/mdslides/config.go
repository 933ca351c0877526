// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdslides/pkg/types"
)

// setDefaults registers every configuration key with its default so that
// environment variables and Unmarshal see the full key set.
func setDefaults() {
	d := types.DefaultConfig()
	defaults := map[string]any{
		"input":     d.Input,
		"output":    d.Output,
		"log_level": d.LogLevel,

		"canvas.width":  d.Canvas.Width,
		"canvas.height": d.Canvas.Height,

		"theme.fallback_title":     d.Theme.FallbackTitle,
		"theme.title_size":         d.Theme.TitleSize,
		"theme.title_color":        d.Theme.TitleColor,
		"theme.bullet_size":        d.Theme.BulletSize,
		"theme.bullet_space_after": d.Theme.BulletSpaceAfter,
		"theme.fallback_size":      d.Theme.FallbackSize,
		"theme.max_bullets":        d.Theme.MaxBullets,
		"theme.fallback_max_chars": d.Theme.FallbackMaxChars,

		"layouts.title":   d.Layouts.Title,
		"layouts.content": d.Layouts.Content,
		"layouts.table":   d.Layouts.Table,

		"handout.format": string(d.Handout.Format),
		"handout.output": d.Handout.Output,
	}
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// loadConfig reads the merged configuration from flags, environment, config
// file and defaults.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// newLogger returns a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// setup loads the configuration and builds the logger every command uses.
func setup() (types.Config, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return types.Config{}, nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return types.Config{}, nil, err
	}
	return cfg, logger, nil
}
