// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

var papersCmd = feedCommand("papers",
	"Show yesterday's daily papers",
	`Papers fetches the Hub daily papers for the previous UTC day and lists the
ten most upvoted, each with authors, summary, and arXiv links.`)

func init() {
	rootCmd.AddCommand(papersCmd)
}
