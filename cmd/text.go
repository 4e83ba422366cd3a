package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/textcase"
)

var caseCmd = &cobra.Command{
	Use:   "case [file]",
	Short: "Convert text case",
	Long: `Convert text to another case.

Examples:
  onestop case --to snake -i 'Hello World'      # hello_world
  onestop case --to title notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "text-case", changedOptions(cmd, map[string]string{
			"to": "case",
		}))
	},
}

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Format, compact or convert JSON",
}

var jsonFormatCmd = &cobra.Command{
	Use:   "format [file.json]",
	Short: "Pretty-print JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "json-format", changedOptions(cmd, map[string]string{
			"indent": "indent",
		}))
	},
}

var jsonCompactCmd = &cobra.Command{
	Use:   "compact [file.json]",
	Short: "Remove insignificant whitespace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "json-compact", nil)
	},
}

var jsonYAMLCmd = &cobra.Command{
	Use:   "yaml [file.json]",
	Short: "Convert JSON to YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "json-to-yaml", nil)
	},
}

func init() {
	rootCmd.AddCommand(caseCmd)
	rootCmd.AddCommand(jsonCmd)
	jsonCmd.AddCommand(jsonFormatCmd)
	jsonCmd.AddCommand(jsonCompactCmd)
	jsonCmd.AddCommand(jsonYAMLCmd)

	caseNames := make([]string, 0, len(textcase.All))
	for _, c := range textcase.All {
		caseNames = append(caseNames, string(c))
	}
	caseCmd.Flags().Var(newEnumValue(string(textcase.Lower), caseNames), "to", "target case ("+joinChoices(caseNames)+")")

	jsonFormatCmd.Flags().Int("indent", 2, "spaces per level, 0 for tabs")
	AddFlagValidation(jsonFormatCmd, "indent", ValidateNonNegative)
}
