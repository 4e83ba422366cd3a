package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/highlight"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/sniff"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
)

// render prints resp in the configured format. Binary output always goes to
// a file: --out when given, otherwise decoded.<ext> in the current
// directory.
func (a *app) render(cmd *cobra.Command, resp *tools.Response) error {
	if len(resp.Binary) > 0 {
		path, err := a.writeBinary(cmd, resp)
		if err != nil {
			return err
		}
		resp.Output = fmt.Sprintf("wrote %d bytes (%s) to %s", len(resp.Binary), resp.MIMEType, path)
	}

	out := cmd.OutOrStdout()
	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" && len(resp.Binary) == 0 {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.NewIO(errors.ErrCodeFileNotFound, "cannot create "+outPath, err)
		}
		defer f.Close()
		out = f
	}

	if a.cfg.Output.Format != "text" {
		return writeStructured(out, a.cfg.Output.Format, resp)
	}
	return a.renderText(cmd, out, resp, outPath == "")
}

// writeStructured encodes v as indented json or yaml.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
}

func (a *app) renderText(cmd *cobra.Command, out io.Writer, resp *tools.Response, terminal bool) error {
	lang := highlight.Language(resp.Tool)
	if terminal && a.cfg.Output.Color && lang != "" {
		if err := highlight.Write(out, resp.Output, lang, highlight.Options{Style: a.cfg.Output.Style}); err != nil {
			return err
		}
		if !strings.HasSuffix(resp.Output, "\n") {
			fmt.Fprintln(out)
		}
	} else if resp.Output != "" {
		fmt.Fprintln(out, strings.TrimRight(resp.Output, "\n"))
	}

	errOut := cmd.ErrOrStderr()
	for _, issue := range resp.Issues {
		fmt.Fprintln(errOut, issue.String())
	}
	for _, w := range resp.Warnings {
		fmt.Fprintln(errOut, "warning:", w)
	}
	if resp.Stats != nil {
		fmt.Fprintf(errOut, "%d -> %d bytes (%.1f%% smaller)\n",
			resp.Stats.OriginalSize, resp.Stats.MinifiedSize, resp.Stats.Saved()*100)
	}
	return nil
}

func (a *app) writeBinary(cmd *cobra.Command, resp *tools.Response) (string, error) {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		path = "decoded" + sniff.Extension(sniff.MIMEType(resp.MIMEType))
	}
	if err := os.WriteFile(path, resp.Binary, 0o644); err != nil {
		return "", errors.NewIO(errors.ErrCodeFileNotFound, "cannot write "+path, err)
	}
	return path, nil
}
