// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

var spacesCmd = feedCommand("spaces",
	"Show recently created Spaces grouped by day",
	`Spaces renders the Hub Spaces listing in the bucketed layout. Spaces have
no download counts, so ranking is by likes alone.`)

func init() {
	rootCmd.AddCommand(spacesCmd)
}
