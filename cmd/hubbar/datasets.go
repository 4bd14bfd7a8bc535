// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

var datasetsCmd = feedCommand("datasets",
	"Show recently created datasets grouped by day",
	`Datasets pages through the Hub datasets listing, newest first, until it
reaches items older than the cutoff. Items are grouped into Today, Yesterday,
This Week, and Older, ranked by likes, and capped per group.`)

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
