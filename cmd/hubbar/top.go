// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

var topCmd = feedCommand("top",
	"Show the top new datasets by likes and by downloads",
	`Top fetches the same datasets as the datasets feed and shows two flat
rankings over the whole window: the top five by likes and the top five by
downloads. A dataset may appear in both.`)

func init() {
	rootCmd.AddCommand(topCmd)
}
