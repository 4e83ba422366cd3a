package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file|dir>",
	Short: "Re-run a tool whenever a file changes",
	Long: `Run a tool on a file once, then again after every change.

Given a directory, every file under it with one of the --ext extensions is
processed when it changes; hidden files, .git and vendor trees are skipped
and each result is printed under a "==> path <==" header.

Rapid saves are grouped using watch.debounce. Tool errors are printed and
watching continues; stop with Ctrl-C.

Examples:
  onestop watch page.html --tool html-to-jsx --out Page.jsx
  onestop watch app.js --tool js-minify --out app.min.js --opt engine=esbuild
  onestop watch src --ext .html,.htm --tool validate-html`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("tool", "t", "", "tool to run on every change (required)")
	watchCmd.Flags().StringArray("opt", nil, "tool option as key=value (repeatable)")
	watchCmd.Flags().StringSlice("ext", nil, "file extensions to process when watching a directory")
	_ = watchCmd.MarkFlagRequired("tool")
}

func runWatch(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("tool")
	raw, _ := cmd.Flags().GetStringArray("opt")
	opts, err := parseOptions(raw)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	tool, ok := a.registry.Get(name)
	if !ok {
		return errors.NewInvalidInput(errors.ErrCodeToolNotFound, "unknown tool: "+name).
			WithContext("available", a.registry.Names())
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return errors.WrapIO(err, errors.ErrCodeFileNotFound, "cannot watch "+args[0])
	}
	dirMode := info.IsDir()

	exts, _ := cmd.Flags().GetStringSlice("ext")
	if dirMode && len(exts) == 0 {
		return errors.NewInvalidInput(errors.ErrCodeInvalidArgument, "--ext is required when watching a directory")
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	runOnce := func(ctx context.Context, path string) {
		req, err := a.request(cmd, []string{path}, tool.BinaryInput)
		if err == nil {
			req.Options = opts
			resp, runErr := a.registry.Run(ctx, name, req)
			if runErr != nil {
				err = runErr
			} else {
				if dirMode {
					fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", path)
				}
				err = a.render(cmd, resp)
			}
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", formatCommandError(err))
		}
	}

	fw, err := watcher.NewFileWatcher(a.cfg.Watch.Debounce, a.logger)
	if err != nil {
		return err
	}
	defer fw.Stop()

	if dirMode {
		if err := fw.AddRecursive(args[0]); err != nil {
			return err
		}
		fw.AddFilter(watcher.ExtensionFilter(normalizeExts(exts)...))
		fw.AddFilter(watcher.NoHiddenFilter)
		fw.AddFilter(watcher.NoBackupFilter)
		fw.AddFilter(watcher.NoGitFilter)
		fw.AddFilter(watcher.NoVendorFilter)
	} else {
		if err := fw.WatchFile(args[0]); err != nil {
			return err
		}
	}

	fw.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, e := range events {
			if e.Type == watcher.EventTypeDeleted || e.Type == watcher.EventTypeRenamed {
				a.logger.Debug(ctx, "Skipping removed file", "path", e.Path)
				continue
			}
			runOnce(ctx, e.Path)
		}
		return nil
	})

	if !dirMode {
		runOnce(ctx, args[0])
	}
	if err := fw.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s with %s (Ctrl-C to stop)\n", args[0], name)

	<-ctx.Done()
	return nil
}

// normalizeExts lowercases extensions and adds a missing leading dot.
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
