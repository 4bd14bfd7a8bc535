// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the hubbar status-bar plugin. Each
// invocation fetches one Hugging Face feed and prints it as menu text.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/hubbar/internal/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

// configErr holds a config file read failure. A missing file is not an error.
var configErr error

// exitError carries a process exit code through cobra. A nil err means the
// output was already written and only the code matters.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

// rootCmd runs the datasets feed when invoked without a subcommand, which is
// how the status-bar host calls the plugin.
var rootCmd = &cobra.Command{
	Use:   "hubbar",
	Short: "Hugging Face Hub feeds for the menu bar",
	Long: `hubbar fetches recent activity from the Hugging Face Hub and prints it in
the xbar/SwiftBar menu format: recently created datasets, models, and spaces
grouped by day, a flat top-N view, and the daily papers.

Without a subcommand it renders the datasets feed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeed(cmd, "datasets")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: hubbar.yaml in ., $XDG_CONFIG_HOME/hubbar, or ~/.config/hubbar)")
	pf.BoolP("verbose", "v", false, "log debug diagnostics to stderr")
	pf.Bool("json", false, "print the result set as JSON instead of menu text")
	pf.Duration("timeout", 0, "per-request HTTP timeout (default 10s)")
	pf.Int("cutoff-days", 0, "only show items created in the last N days (default 7)")
	pf.Int("max-pages", 0, "maximum list pages fetched per run (default 50)")
	pf.Int("page-size", 0, "items requested per list page (default 1000)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("copy-command", "", "executable invoked by copy actions (default: this binary)")

	if err := bindFlags(); err != nil {
		panic(err)
	}
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"verbose":      "verbose",
	"json":         "json",
	"timeout":      "http.timeout",
	"cutoff-days":  "feed.cutoff_days",
	"max-pages":    "feed.max_pages",
	"page-size":    "feed.page_size",
	"log-level":    "log.level",
	"copy-command": "theme.copy_command",
}

func bindFlags() error {
	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("http.user_agent", "hubbar/"+version)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("theme.font", "Menlo")
	viper.SetDefault("theme.size", 12)
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hubbar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "hubbar"))

		// xdg.ConfigHome is ~/Library/Application Support on macOS; keep
		// ~/.config working there too.
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hubbar"))
		}
	}

	viper.SetEnvPrefix("HUBBAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(os.Stderr, "hubbar:", ee.err)
		}
		os.Exit(ee.code)
	}
	fmt.Fprintln(os.Stderr, "hubbar:", err)
	os.Exit(pipeline.ExitUsage)
}
