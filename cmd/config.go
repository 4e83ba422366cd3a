package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/config"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Inspect the configuration resolved from flags, ONESTOP_ environment
variables, the config file and defaults.

Examples:
  onestop config show
  onestop config show -o json
  onestop config validate --strict`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report every configuration error and warning",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	configValidateCmd.Flags().Bool("strict", false, "treat warnings as errors")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if format != "json" {
		format = "yaml"
	}
	return writeStructured(cmd.OutOrStdout(), format, cfg)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Validating %s\n", used)
	}

	result := config.ValidateConfigWithDetails(cfg)
	strict, _ := cmd.Flags().GetBool("strict")

	if !result.HasErrors() && !result.HasWarnings() {
		fmt.Fprintln(out, "Configuration is valid.")
		return nil
	}

	fmt.Fprint(out, result.String())

	if result.HasErrors() {
		return errors.NewConfig(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("configuration validation failed with %d errors", len(result.Errors)))
	}
	if strict {
		return errors.NewConfig(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("configuration validation failed in strict mode with %d warnings", len(result.Warnings)))
	}

	fmt.Fprintf(out, "Configuration is valid with %d warnings. Use --strict to treat warnings as errors.\n", len(result.Warnings))
	return nil
}
