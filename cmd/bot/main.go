// Package main is the entry point for the tibiabot Discord bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tibiabot",
	Short: "Tibia lookup Discord bot",
	Long:  `tibiabot answers /item and /creature slash commands with descriptions assembled from TibiaWiki data.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
