package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/markup"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file.html]",
	Short: "Lint HTML structure",
	Long: `Report unclosed, mismatched and unexpected tags, deprecated elements,
images without alt text and a missing DOCTYPE.

The command exits with an error when any error-severity issue is found,
or with --strict when any issue is found at all.

Examples:
  onestop validate index.html
  onestop validate --strict -o json page.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var jsxCmd = &cobra.Command{
	Use:   "jsx [file.html]",
	Short: "Convert HTML to JSX",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "html-to-jsx", nil)
	},
}

var markdownCmd = &cobra.Command{
	Use:   "markdown [file.html]",
	Short: "Convert HTML to Markdown",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "html-to-markdown", changedOptions(cmd, map[string]string{
			"sanitize": "sanitize",
			"domain":   "domain",
		}))
	},
}

var seoCmd = &cobra.Command{
	Use:   "seo [file.html]",
	Short: "Score a page against on-page SEO checks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "seo-score", nil)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(jsxCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(seoCmd)

	validateCmd.Flags().Bool("strict", false, "treat warnings as failures")

	markdownCmd.Flags().Bool("sanitize", false, "strip unsafe markup before converting")
	markdownCmd.Flags().String("domain", "", "base URL for relative links")
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, resp, err := execTool(cmd, args, "validate-html", nil)
	if err != nil {
		return err
	}
	if err := a.render(cmd, resp); err != nil {
		return err
	}

	summary := markup.Summarize(resp.Issues)
	strict, _ := cmd.Flags().GetBool("strict")
	if summary.Errors > 0 || (strict && summary.Warnings > 0) {
		return errors.NewInvalidInput(errors.ErrCodeSyntax,
			fmt.Sprintf("validation failed with %d errors and %d warnings", summary.Errors, summary.Warnings))
	}
	return nil
}
