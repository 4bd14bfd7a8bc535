//go:build mage

// Package main contains Mage build targets for hubbar developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "hubbar"
	cmdPkg  = "./cmd/hubbar"

	// pluginInterval is the refresh interval encoded in the plugin file
	// name, as the menu bar host expects.
	pluginInterval = "10m"
)

// Build compiles the CLI binary into bin/. The version comes from
// HUBBAR_VERSION, defaulting to "dev".
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("HUBBAR_VERSION")
	if version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install builds the binary and writes one plugin wrapper per feed into the
// plugin directory (HUBBAR_PLUGIN_DIR, or the xbar default).
func Install() error {
	mg.Deps(Build)

	dir := os.Getenv("HUBBAR_PLUGIN_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support", "xbar", "plugins")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	bin, err := filepath.Abs(filepath.Join(binDir, binName))
	if err != nil {
		return err
	}
	for _, feed := range []string{"datasets", "models", "spaces", "top", "papers"} {
		name := fmt.Sprintf("hubbar-%s.%s.sh", feed, pluginInterval)
		script := fmt.Sprintf("#!/bin/sh\nexec %q %s\n", bin, feed)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
