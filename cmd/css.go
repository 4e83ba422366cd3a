package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Generate CSS declarations",
	Long: `Generate CSS declarations from flags.

Examples:
  onestop css shadow --y 8 --blur 24 --color '#1e293b' --opacity 0.3
  onestop css gradient --angle 45 '#ff0000 0' 'blue 100'
  onestop css radius --radius 12 --top-left 0`,
}

var cssShadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Generate a box-shadow declaration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerator(cmd, "css-box-shadow", "", changedOptions(cmd, map[string]string{
			"x":       "x",
			"y":       "y",
			"blur":    "blur",
			"spread":  "spread",
			"color":   "color",
			"opacity": "opacity",
			"inset":   "inset",
		}))
	},
}

var cssGradientCmd = &cobra.Command{
	Use:   "gradient [stop...]",
	Short: "Generate a linear-gradient background",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerator(cmd, "css-gradient", strings.Join(args, ", "), changedOptions(cmd, map[string]string{
			"angle": "angle",
			"stops": "stops",
		}))
	},
}

var cssRadiusCmd = &cobra.Command{
	Use:   "radius",
	Short: "Generate a border-radius declaration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerator(cmd, "css-border-radius", "", changedOptions(cmd, map[string]string{
			"radius":       "radius",
			"top-left":     "top_left",
			"top-right":    "top_right",
			"bottom-right": "bottom_right",
			"bottom-left":  "bottom_left",
			"unit":         "unit",
		}))
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.AddCommand(cssShadowCmd)
	cssCmd.AddCommand(cssGradientCmd)
	cssCmd.AddCommand(cssRadiusCmd)

	shadow := cssShadowCmd.Flags()
	shadow.Int("x", 0, "horizontal offset in px")
	shadow.Int("y", 4, "vertical offset in px")
	shadow.Int("blur", 12, "blur radius in px")
	shadow.Int("spread", 0, "spread radius in px")
	shadow.String("color", "#000000", "hex or keyword color")
	shadow.Float64("opacity", 0.25, "opacity for hex colors, 0 to 1")
	shadow.Bool("inset", false, "draw the shadow inside the box")
	AddFlagValidation(cssShadowCmd, "blur", ValidateNonNegative)

	cssGradientCmd.Flags().Int("angle", 90, "direction in degrees")
	cssGradientCmd.Flags().String("stops", "", `color stops such as "#f00 0, blue 100"`)

	radius := cssRadiusCmd.Flags()
	radius.Int("radius", 8, "value for every corner")
	radius.Int("top-left", 0, "top-left corner, overrides --radius")
	radius.Int("top-right", 0, "top-right corner, overrides --radius")
	radius.Int("bottom-right", 0, "bottom-right corner, overrides --radius")
	radius.Int("bottom-left", 0, "bottom-left corner, overrides --radius")
	radius.String("unit", "px", "px, %, rem or em")
}

// runGenerator runs a tool that builds its output from options instead of
// reading input.
func runGenerator(cmd *cobra.Command, name, input string, opts map[string]string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	resp, err := a.registry.Run(cmd.Context(), name, tools.Request{Input: input, Options: opts})
	if err != nil {
		return err
	}
	return a.render(cmd, resp)
}
