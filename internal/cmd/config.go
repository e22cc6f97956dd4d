package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/config"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/output"
)

var (
	configFormat string
	configForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or validate the aeries configuration",
	Long: `Manage the layout tables the extractor uses and the default output settings.

Configuration is read from --config, or from the first .aeries/config.yaml,
aeries.yaml or aeries.yml found in the working directory or its parents.
Without a file the built-in defaults apply.

Examples:
    aeries config show                  # Show effective config
    aeries config show --format json    # Output as JSON
    aeries config init                  # Write defaults to .aeries/config.yaml
    aeries config validate              # Check config validity`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [FILE]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "output format: yaml, json")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd, configInitCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch configFormat {
	case "json":
		return output.WriteJSON(out, cfg)
	case "yaml", "":
		return output.WriteYAML(out, cfg)
	default:
		return NewExitError(ExitFailure, fmt.Sprintf("unknown format %q (want yaml or json)", configFormat))
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(".aeries", "config.yaml")
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return NewExitError(ExitFailure, fmt.Sprintf("%s already exists (use --force to overwrite)", path))
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.Header("Configuration Validation", outputWidth()))
	fmt.Fprintln(out)

	source := cfgFile
	if source == "" {
		if cwd, err := os.Getwd(); err == nil {
			source, _ = config.FindConfig(cwd)
		}
	}
	if source == "" {
		fmt.Fprintf(out, "  %s Config file not found (using defaults)\n", output.Color("[WARN]", output.Yellow))
	} else {
		fmt.Fprintf(out, "  %s Config file: %s\n", output.Color("[PASS]", output.Green), source)
	}

	errs := cfg.Validate()
	for _, e := range errs {
		fmt.Fprintf(out, "  %s %s\n", output.Color("[FAIL]", output.Red), e)
	}
	fmt.Fprintln(out)

	if len(errs) > 0 {
		fmt.Fprintf(out, "Status: %s\n", output.Color("INVALID", output.Red))
		return NewExitError(ExitFailure, "configuration validation failed")
	}
	fmt.Fprintf(out, "Status: %s\n", output.Color("VALID", output.Green))
	return nil
}
