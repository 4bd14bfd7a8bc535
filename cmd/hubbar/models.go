// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

var modelsCmd = feedCommand("models",
	"Show recently created models grouped by day",
	`Models renders the Hub models listing in the same bucketed layout as the
datasets feed.`)

func init() {
	rootCmd.AddCommand(modelsCmd)
}
