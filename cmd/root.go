package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "priorart",
	Short: "Patent prior-art analysis service",
	Long: `priorart analyzes a free-text invention description against a patent
corpus and produces a structured prior-art report. It transforms the
description into base-technology and novel-features search artifacts,
runs hybrid vector search for each, merges the evidence, and synthesizes
the final analyst report.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	settingDefaultConfig()
}
