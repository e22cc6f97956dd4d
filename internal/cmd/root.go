// Package cmd provides the CLI commands for the Aeries grade tools.
package cmd

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/config"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/logging"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/output"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

var (
	cfgFile  string
	noColor  bool
	logLevel string
)

// Set by the root command before any subcommand runs.
var (
	cfg    = config.DefaultConfig()
	logger = log.NewNopLogger()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aeries",
	Short: "Aeries gradebook extractor and weighted grade calculator",
	Long: `aeries turns text copied from the Aeries student gradebook into structured
assignments and category weights, and calculates the weighted final grade.

Copy the whole gradebook page (Ctrl+A, Ctrl+C), then:

    pbpaste | aeries grade
    aeries parse gradebook.txt --format json
    aeries calc biology.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .aeries/config.yaml or aeries.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	l, err := logging.New(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return NewExitError(1, err.Error())
	}
	logger = l

	loaded, path, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded
	if path != "" {
		_ = level.Debug(logger).Log("msg", "loaded config", "path", path)
	}
	return nil
}

// loadConfig reads --config, or searches upward from the working directory.
// The returned path is empty when defaults are used.
func loadConfig() (*config.Config, string, error) {
	if cfgFile != "" {
		c, err := config.Load(cfgFile)
		return c, cfgFile, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}
	c, err := config.LoadFromDir(cwd)
	if err != nil {
		return nil, "", err
	}
	path, _ := config.FindConfig(cwd)
	return c, path, nil
}
