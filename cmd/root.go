// Package cmd implements the promptloom CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/config"
	"github.com/promptloom/promptloom/internal/container"
)

const version = "0.1.0"
const logo = "🧵"

var verbose bool

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "promptloom",
	Short: logo + " promptloom — Generative AI Provider Orchestrator",
	Long:  logo + " promptloom — one front door for text, image and video generation across providers",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(statusCmd)
}

// loadConfig loads the user config and applies global CLI flags to it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// buildContainer loads the config, lets the caller tweak it, and wires the
// service container from the result.
func buildContainer(tweak func(*config.Config)) (*container.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if tweak != nil {
		tweak(cfg)
	}
	return container.New(cfg)
}
