package main

import (
	"fmt"
	"os"

	"glassjoke/internal/config"
	"glassjoke/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// set by loadConfig before any subcommand runs
	cfg config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "glassjoke",
	Short: "Simulate an office worker's thirst over a working day",
	Long: `glassjoke runs a discrete-time simulation of one employee's working day:
each tick the employee may drink from a glass, an intern refills it when it
runs dry, and room temperature and work intensity drift.

Configuration comes from configs/config.yml (or --config), overridden by
GLASSJOKE_* environment variables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default configs/config.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v := config.NewViper(configPath)
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := config.Read(v); err != nil {
		return err
	}
	c, err := config.FromViper(v)
	if err != nil {
		return err
	}
	cfg = c
	log = logger.Get(cfg.LogLevel)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
