package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for onestop: the version, git commit,
build time, Go version and platform.

Examples:
  onestop version
  onestop version --short
  onestop version -o json`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "show the short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintln(out, info.Short())
		return nil
	}

	switch format := viper.GetString("output.format"); format {
	case "json", "yaml":
		return writeStructured(out, format, info)
	default:
		fmt.Fprintln(out, "onestop "+info.Short())
		fmt.Fprintln(out, info.String())
		return nil
	}
}
