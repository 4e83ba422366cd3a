package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/config"
)

var jsCmd = &cobra.Command{
	Use:   "js",
	Short: "Minify or beautify JavaScript",
	Long: `Minify or beautify JavaScript.

The builtin engine is a fast text pass that keeps the code's structure.
The esbuild engine parses the source and rejects syntax errors.

Examples:
  onestop js minify app.js --out app.min.js
  onestop js beautify --engine esbuild bundle.js`,
}

var jsMinifyCmd = &cobra.Command{
	Use:   "minify [file.js]",
	Short: "Strip comments and whitespace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "js-minify", nil)
	},
}

var jsBeautifyCmd = &cobra.Command{
	Use:   "beautify [file.js]",
	Short: "Re-indent JavaScript",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "js-beautify", nil)
	},
}

func init() {
	rootCmd.AddCommand(jsCmd)
	jsCmd.AddCommand(jsMinifyCmd)
	jsCmd.AddCommand(jsBeautifyCmd)

	jsCmd.PersistentFlags().Var(newEnumValue(config.DefaultJSEngine, config.JSEngines), "engine", "processing engine ("+joinChoices(config.JSEngines)+")")
	_ = viper.BindPFlag("js.engine", jsCmd.PersistentFlags().Lookup("engine"))
}
