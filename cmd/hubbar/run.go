// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/hubbar/internal/feed"
	"github.com/pdiddy/hubbar/internal/logging"
	"github.com/pdiddy/hubbar/internal/pipeline"
	"github.com/pdiddy/hubbar/internal/render"
	"github.com/pdiddy/hubbar/pkg/types"
)

// newSource builds the feed source. Tests replace it with a stub.
var newSource = func(cfg types.HTTPConfig) pipeline.Source {
	return feed.New(cfg)
}

// loadConfig resolves the effective configuration for the named feed from
// viper: flags, HUBBAR_* environment variables, the config file, and
// defaults, in that order.
func loadConfig(name string) (types.Config, error) {
	if configErr != nil {
		return types.Config{}, configErr
	}
	desc, err := feed.Lookup(name)
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Feed: desc,
		Theme: types.ThemeConfig{
			Font:        viper.GetString("theme.font"),
			Size:        viper.GetInt("theme.size"),
			CopyCommand: viper.GetString("theme.copy_command"),
		},
		Log: types.LogConfig{Level: viper.GetString("log.level")},
	}

	overrides := []struct {
		key string
		dst *int
	}{
		{"feed.cutoff_days", &cfg.Feed.CutoffDays},
		{"feed.max_pages", &cfg.Feed.MaxPages},
		{"feed.page_size", &cfg.Feed.PageSize},
	}
	for _, o := range overrides {
		v := viper.GetInt(o.key)
		if v < 0 {
			return types.Config{}, fmt.Errorf("%s must not be negative, got %d", o.key, v)
		}
		if v > 0 {
			*o.dst = v
		}
	}
	if cfg.HTTP.Timeout < 0 {
		return types.Config{}, fmt.Errorf("http.timeout must not be negative, got %s", cfg.HTTP.Timeout)
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return types.Config{}, err
	}
	if cfg.Theme.CopyCommand == "" {
		cfg.Theme.CopyCommand = selfPath()
	}
	return cfg, nil
}

// selfPath returns the running executable so copy actions call back into
// this binary.
func selfPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "hubbar"
	}
	return exe
}

// runFeed renders one feed to the command's stdout. Configuration problems
// print the error menu without fetching and exit 1; fetch failures print
// the error menu and exit 2.
func runFeed(cmd *cobra.Command, name string) error {
	cfg, err := loadConfig(name)
	if err != nil {
		desc, lerr := feed.Lookup(name)
		if lerr != nil {
			desc = types.FeedDescriptor{Name: name, Noun: name}
		}
		render.New(render.DefaultTheme(), time.Now().UTC()).Error(desc, err).WriteTo(cmd.OutOrStdout())
		return &exitError{code: pipeline.ExitUsage, err: err}
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	ctx := logging.Into(cmd.Context(), logging.New(cmd.ErrOrStderr(), level))

	code := pipeline.Run(ctx, pipeline.Options{
		Desc:   cfg.Feed,
		Source: newSource(cfg.HTTP),
		Theme:  render.NewTheme(cfg.Theme),
		JSON:   viper.GetBool("json"),
	}, cmd.OutOrStdout())
	if code != pipeline.ExitOK {
		return &exitError{code: code}
	}
	return nil
}

// feedCommand builds the subcommand for one catalog feed.
func feedCommand(name, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(cmd, name)
		},
	}
}
