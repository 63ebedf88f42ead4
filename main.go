// skybound is a side-scrolling platformer built on Ebitengine.
//
// Usage:
//
//	skybound play              - Play the morning level
//	skybound results           - Show recent session results
//	skybound version           - Print the build version
//
// Global flags:
//
//	--config <path>  - Settings file (default: skybound.toml, optional)
//	--db <path>      - Results database, overrides the settings file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/skybound/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skybound",
	Short: "Skybound - a side-scrolling platformer",
	Long: `Skybound is a small side-scrolling platformer. Run through the
morning level, dodge or strike down the Tengu and Werewolves, and reach
the door on the far side.

Examples:
  skybound play
  skybound play --debug
  skybound results --limit 5`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "skybound %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings file (default: skybound.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides settings)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the settings file, applies the global --db override
// and installs the default logger.
func loadSettings(debug bool) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Results.DBPath = flagDBPath
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skybound",
		Level:           level,
	}))
	return cfg, nil
}
