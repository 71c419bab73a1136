// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gs-tracker CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gs-tracker CLI.
var rootCmd = &cobra.Command{
	Use:   "gs-tracker",
	Short: "Track Gaussian Splatting papers on arXiv",
	Long: `gs-tracker maintains a curated collection of Gaussian Splatting papers.
It fetches new submissions from the arXiv API, filters them for relevance,
classifies them into topic tags, and persists the result as a flat JSON
document. From that document it builds a static browsable site and an
RSS feed.

Each stage is a subcommand: fetch, build, and rss.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gs-tracker.yaml or ~/.config/gs-tracker/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gs-tracker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gs-tracker"))
		}
	}

	viper.SetEnvPrefix("GS_TRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the command logger from the persistent log-level flag.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(level)
}

// stringSetting resolves a flag value, letting the config file back flags
// the user did not set on the command line.
func stringSetting(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func intSetting(cmd *cobra.Command, name string) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func durationSetting(cmd *cobra.Command, name string) time.Duration {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetDuration(name)
	}
	v, _ := cmd.Flags().GetDuration(name)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
