// Package cmd provides the onestop command-line interface.
//
// Configuration comes from several sources, highest priority first:
//
//  1. Command-line flags (--format, --engine, --port, ...)
//  2. ONESTOP_<SECTION>_<OPTION> environment variables
//  3. The config file named by --config or ONESTOP_CONFIG_FILE
//  4. .onestop.yml in the current directory
//
// Every tool command reads its input from a file argument, the --input
// flag or standard input, in that order.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "onestop",
	Short: "Everyday developer text tools in one binary",
	Long: `onestop bundles small developer tools behind one CLI, an HTTP API,
a live WebSocket channel and an MCP server.

Tools:
  base64 encode|decode   Base64 text and files, data: URIs
  sniff                  Detect a file type from its magic bytes
  validate               Lint HTML structure
  jsx                    Convert HTML to JSX
  js minify|beautify     Process JavaScript
  case                   Convert text case
  json format|compact|yaml
  css shadow|gradient|radius
  seo                    Score a page against on-page SEO checks
  markdown               Convert HTML to Markdown

Servers:
  serve                  HTTP API, web page and live channel
  mcp                    Model Context Protocol server on stdio
  watch                  Re-run a tool whenever a file changes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", formatCommandError(err))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .onestop.yml, can also use ONESTOP_CONFIG_FILE env var)")
	flags.Var(newEnumValue(config.DefaultLogLevel, config.LogLevels), "log-level", "log level ("+joinChoices(config.LogLevels)+")")
	flags.Var(newEnumValue(config.DefaultLogFormat, config.LogFormats), "log-format", "log format ("+joinChoices(config.LogFormats)+")")
	flags.VarP(newEnumValue(config.DefaultOutputFormat, config.OutputFormats), "format", "o", "output format ("+joinChoices(config.OutputFormats)+")")
	flags.Bool("color", false, "highlight code output")
	flags.StringP("input", "i", "", "literal input instead of a file or stdin")
	flags.String("out", "", "write output to this file instead of stdout")

	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))
	_ = viper.BindPFlag("output.color", flags.Lookup("color"))
}

// initConfig picks the config file and enables ONESTOP_ environment
// variables. A missing config file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("ONESTOP_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".onestop")
	}

	viper.SetEnvPrefix("ONESTOP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer())
	config.BindEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
