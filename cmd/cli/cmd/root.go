// Package cmd provides the CLI commands for archcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archcost/internal/config"
	"archcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "archcost",
	Short: "Estimate cloud infrastructure costs for an application architecture",
	Long: `archcost estimates monthly cloud infrastructure costs from a workload
description: the chosen architecture, expected traffic and the optional
infrastructure feature blocks.

Examples:
  archcost estimate -f workload.hcl
  archcost estimate -f workload.hcl --currency EUR --format json
  archcost pricing status`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.archcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// CLI logging goes to stderr as console text; the report goes to stdout
	cfg := config.Get()
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "warn"
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("archcost version 1.0.0")
	},
}
