// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var copyCmd = &cobra.Command{
	Use:   "copy <text>",
	Short: "Copy text to the system clipboard",
	Long: `Copy writes its arguments, joined by spaces, to the system clipboard. Menu
actions such as "Copy ID" invoke it in the background.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := writeClipboard(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("writing clipboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
