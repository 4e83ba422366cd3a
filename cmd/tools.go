package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"ls", "list"},
	Short:   "List the available tools",
	Long: `List every tool with its category, description and options.

Examples:
  onestop tools
  onestop tools -o json`,
	Args: cobra.NoArgs,
	RunE: runListTools,
}

var runCmd = &cobra.Command{
	Use:   "run <tool> [file]",
	Short: "Run any tool by name",
	Long: `Run any tool by name with options given as key=value pairs.

Examples:
  onestop run text-case --opt case=kebab -i 'Hello World'
  onestop run css-box-shadow --opt blur=20 --opt inset=true -i ''`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRunTool,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArray("opt", nil, "tool option as key=value (repeatable)")
}

func runListTools(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	list := a.registry.List()
	if a.cfg.Output.Format != "text" {
		return writeStructured(cmd.OutOrStdout(), a.cfg.Output.Format, list)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tOPTIONS\tDESCRIPTION")
	for _, t := range list {
		names := make([]string, 0, len(t.Options))
		for _, o := range t.Options {
			names = append(names, o.Name)
		}
		opts := strings.Join(names, ",")
		if opts == "" {
			opts = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name, t.Category, opts, t.Description)
	}
	return w.Flush()
}

func runRunTool(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("opt")
	opts, err := parseOptions(raw)
	if err != nil {
		return err
	}
	return runTool(cmd, args[1:], args[0], opts)
}

// parseOptions turns key=value pairs into a tool option map. A later pair
// overrides an earlier one with the same key.
func parseOptions(pairs []string) (map[string]string, error) {
	opts := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.NewInvalidInput(errors.ErrCodeInvalidArgument,
				fmt.Sprintf("invalid option %q: expected key=value", pair))
		}
		opts[key] = value
	}
	return opts, nil
}
