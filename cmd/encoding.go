package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/config"
)

var base64Cmd = &cobra.Command{
	Use:   "base64",
	Short: "Encode and decode Base64",
}

var base64EncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode text or a file to Base64",
	Long: `Encode text or a file to Base64.

Text is encoded as UTF-8. Files are encoded byte for byte; with --data-uri
the result is wrapped in a data: URI carrying the sniffed MIME type.

Examples:
  onestop base64 encode -i 'hello'
  onestop base64 encode logo.png --data-uri`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "base64-encode", changedOptions(cmd, map[string]string{
			"data-uri": "data_uri",
		}))
	},
}

var base64DecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode Base64 or a data: URI",
	Long: `Decode Base64 or a data: URI.

Payloads that start with a known file signature, or that are mostly
non-printable, are written to a file (--out, or decoded.<ext>). Everything
else is printed as text.

Examples:
  onestop base64 decode -i 'aGVsbG8='
  onestop base64 decode image.b64 --out image.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "base64-decode", changedOptions(cmd, map[string]string{
			"binary-threshold": "binary_threshold",
		}))
	},
}

var sniffCmd = &cobra.Command{
	Use:   "sniff [file]",
	Short: "Detect a file type from its magic bytes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, "sniff", nil)
	},
}

func init() {
	rootCmd.AddCommand(base64Cmd)
	rootCmd.AddCommand(sniffCmd)
	base64Cmd.AddCommand(base64EncodeCmd)
	base64Cmd.AddCommand(base64DecodeCmd)

	base64EncodeCmd.Flags().Bool("data-uri", false, "wrap the result in a data: URI")
	base64DecodeCmd.Flags().Float64("binary-threshold", config.DefaultBinaryThreshold, "share of non-printable bytes above which output is a file")

	AddFlagValidation(base64DecodeCmd, "binary-threshold", ValidateRatio)
}
