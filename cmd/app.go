package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/config"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/input"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/logging"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/script"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
)

// app bundles what a command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *tools.Registry
	reader   *input.Reader
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: tools.NewRegistry(logger, toolSettings(cfg)),
		reader:   input.New(cfg.Input.MaxBytes).WithStdin(cmd.InOrStdin()),
	}, nil
}

func toolSettings(cfg *config.Config) tools.Settings {
	return tools.Settings{
		BinaryThreshold: cfg.Codec.BinaryThreshold,
		JSEngine:        script.Engine(cfg.JS.Engine),
	}
}

// request builds a tool request from, in order: a file argument, the
// --input flag, or stdin. Binary tools get the raw bytes in Data.
func (a *app) request(cmd *cobra.Command, args []string, binary bool) (tools.Request, error) {
	var req tools.Request

	path := input.StdinPath
	if len(args) > 0 {
		path = args[0]
	} else if f := cmd.Flags().Lookup("input"); f != nil && f.Changed {
		req.Input = f.Value.String()
		if binary {
			req.Data = []byte(req.Input)
		}
		return req, nil
	}

	if binary {
		data, err := a.reader.ReadBytes(path)
		if err != nil {
			return req, err
		}
		req.Data = data
		return req, nil
	}

	text, err := a.reader.ReadText(path)
	if err != nil {
		return req, err
	}
	req.Input = text
	return req, nil
}

// execTool loads configuration, reads input and runs the named tool.
func execTool(cmd *cobra.Command, args []string, name string, opts map[string]string) (*app, *tools.Response, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, nil, err
	}

	tool, ok := a.registry.Get(name)
	if !ok {
		return nil, nil, errors.NewInvalidInput(errors.ErrCodeToolNotFound, "unknown tool: "+name).
			WithContext("available", a.registry.Names())
	}

	req, err := a.request(cmd, args, tool.BinaryInput)
	if err != nil {
		return nil, nil, err
	}
	if len(opts) > 0 {
		req.Options = opts
	}

	a.logger.Debug(cmd.Context(), "Running tool",
		"tool", name,
		"input_bytes", len(req.Input)+len(req.Data),
		"input", logging.SanitizeForLog(req.Input))
	resp, err := a.registry.Run(cmd.Context(), name, req)
	if err != nil {
		return nil, nil, err
	}
	return a, resp, nil
}

// runTool runs the named tool and prints the response.
func runTool(cmd *cobra.Command, args []string, name string, opts map[string]string) error {
	a, resp, err := execTool(cmd, args, name, opts)
	if err != nil {
		return err
	}
	return a.render(cmd, resp)
}
