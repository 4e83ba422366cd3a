// Package tools exposes every text tool behind a single name-keyed registry
// so the CLI, the HTTP API, the live WebSocket channel and the MCP server
// run them the same way.
package tools

import (
	"context"
	"sort"
	"sync"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/codec"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/logging"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/markup"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/script"
)

// Request is the input to a tool. Data carries raw bytes for tools that
// accept binary input; when it is empty they fall back to Input.
type Request struct {
	Input   string            `json:"input" yaml:"input"`
	Data    []byte            `json:"data,omitempty" yaml:"data,omitempty"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Response is the output of a tool. Only the fields a tool produces are set.
type Response struct {
	Tool     string         `json:"tool" yaml:"tool"`
	Output   string         `json:"output" yaml:"output"`
	Warnings []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Issues   []markup.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
	Stats    *script.Stats  `json:"stats,omitempty" yaml:"stats,omitempty"`
	MIMEType string         `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Binary   []byte         `json:"binary,omitempty" yaml:"-"`
	Data     interface{}    `json:"data,omitempty" yaml:"data,omitempty"`
}

// OptionSpec documents one option a tool reads from Request.Options.
type OptionSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
}

// RunFunc performs a tool's work.
type RunFunc func(ctx context.Context, req Request) (*Response, error)

// Tool is a named, documented RunFunc.
type Tool struct {
	Name        string       `json:"name" yaml:"name"`
	Category    string       `json:"category" yaml:"category"`
	Description string       `json:"description" yaml:"description"`
	BinaryInput bool         `json:"binary_input,omitempty" yaml:"binary_input,omitempty"`
	Options     []OptionSpec `json:"options,omitempty" yaml:"options,omitempty"`
	Run         RunFunc      `json:"-" yaml:"-"`
}

// Settings carries the configured defaults tools fall back to when a
// request does not override them.
type Settings struct {
	BinaryThreshold float64
	JSEngine        script.Engine
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{BinaryThreshold: codec.DefaultBinaryThreshold, JSEngine: script.EngineBuiltin}
}

// Registry holds tools by name. It is safe for concurrent use.
type Registry struct {
	tools    map[string]*Tool
	mutex    sync.RWMutex
	settings Settings
	logger   logging.Logger
	handler  *errors.ErrorHandler
}

// NewRegistry creates a registry preloaded with the built-in tools. A nil
// logger discards log output.
func NewRegistry(logger logging.Logger, settings Settings) *Registry {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.WithComponent("tools")

	r := &Registry{
		tools:    make(map[string]*Tool),
		settings: settings,
		logger:   logger,
		handler:  errors.NewErrorHandler(logger),
	}
	for _, t := range r.builtins() {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a tool.
func (r *Registry) Register(tool *Tool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.tools[tool.Name] = tool
}

// Get returns the tool called name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// List returns every tool sorted by category, then name.
func (r *Registry) List() []*Tool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns every tool name in sorted order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named tool. A panic inside the tool is returned as an
// internal error; the registry stays usable afterwards.
func (r *Registry) Run(ctx context.Context, name string, req Request) (resp *Response, err error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, errors.NewInvalidInput(errors.ErrCodeToolNotFound, "unknown tool: "+name).WithTool(name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op := logging.StartOperation(r.logger, name)
	defer func() {
		if err != nil {
			var te *errors.ToolError
			if errors.As(err, &te) && te.Tool == "" {
				te.WithTool(name)
			}
			r.handler.Handle(ctx, err)
			return
		}
		if resp == nil {
			resp = &Response{}
		}
		resp.Tool = name
		op.End(ctx,
			"input_bytes", len(req.Input)+len(req.Data),
			"output_bytes", len(resp.Output)+len(resp.Binary))
	}()
	defer errors.Recover(name, &err)

	return tool.Run(ctx, req)
}
