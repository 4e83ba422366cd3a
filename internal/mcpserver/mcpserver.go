// Package mcpserver publishes the tool registry as Model Context Protocol
// tools so assistants can call onestop directly.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/logging"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
)

// ToolPrefix is prepended to every published tool name.
const ToolPrefix = "onestop_"

// ToolName maps a registry name such as js-minify to onestop_js_minify.
func ToolName(name string) string {
	return ToolPrefix + strings.ReplaceAll(name, "-", "_")
}

// New creates an MCP server with every registry tool registered.
func New(registry *tools.Registry, version string, logger logging.Logger) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "onestop", Version: version}, nil)
	Register(srv, registry, logger)
	return srv
}

// Serve runs srv over stdin and stdout until the client disconnects or ctx
// is cancelled.
func Serve(ctx context.Context, srv *mcp.Server) error {
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// Register adds one MCP tool per registry tool. A nil logger discards log
// output.
func Register(srv *mcp.Server, registry *tools.Registry, logger logging.Logger) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.WithComponent("mcp")

	for _, t := range registry.List() {
		tool := t
		srv.AddTool(&mcp.Tool{
			Name:        ToolName(tool.Name),
			Description: tool.Description,
			InputSchema: inputSchema(tool),
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			toolReq, err := decodeArguments(tool, req.Params.Arguments)
			if err != nil {
				return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
			}

			resp, err := registry.Run(ctx, tool.Name, toolReq)
			if err != nil {
				logger.Debug(ctx, "MCP tool call failed", "tool", tool.Name, "error", err.Error())
				return toolError(err), nil
			}
			return toolResult(resp), nil
		})
	}
}

func inputSchema(tool *tools.Tool) map[string]any {
	properties := map[string]any{
		"input": map[string]any{"type": "string", "description": "text to process"},
	}
	if tool.BinaryInput {
		properties["data"] = map[string]any{
			"type":            "string",
			"contentEncoding": "base64",
			"description":     "raw bytes to process instead of input, Base64 encoded",
		}
	}
	for _, opt := range tool.Options {
		desc := opt.Description
		if opt.Default != "" {
			desc += " (default " + opt.Default + ")"
		}
		properties[opt.Name] = map[string]any{"type": "string", "description": desc}
	}

	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if !tool.BinaryInput {
		s["required"] = []string{"input"}
	}
	return s
}

// decodeArguments accepts options as strings, numbers or booleans so
// clients need not quote them.
func decodeArguments(tool *tools.Tool, raw json.RawMessage) (tools.Request, error) {
	var req tools.Request
	if len(raw) == 0 {
		return req, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var args map[string]interface{}
	if err := dec.Decode(&args); err != nil {
		return req, err
	}

	known := make(map[string]bool, len(tool.Options))
	for _, opt := range tool.Options {
		known[opt.Name] = true
	}

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := args[key]
		switch key {
		case "input":
			s, ok := value.(string)
			if !ok {
				return req, stderrors.New("input must be a string")
			}
			req.Input = s
		case "data":
			s, ok := value.(string)
			if !ok {
				return req, stderrors.New("data must be a Base64 string")
			}
			data, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return req, fmt.Errorf("data is not valid Base64: %w", err)
			}
			req.Data = data
		default:
			if !known[key] {
				return req, fmt.Errorf("unknown option %q", key)
			}
			if req.Options == nil {
				req.Options = make(map[string]string)
			}
			switch v := value.(type) {
			case string:
				req.Options[key] = v
			case json.Number, bool:
				req.Options[key] = fmt.Sprint(v)
			default:
				return req, fmt.Errorf("option %q must be a string, number or boolean", key)
			}
		}
	}
	return req, nil
}

type details struct {
	Warnings []string    `json:"warnings,omitempty"`
	Issues   interface{} `json:"issues,omitempty"`
	Stats    interface{} `json:"stats,omitempty"`
	MIMEType string      `json:"mime_type,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// toolResult puts the output first. Anything else the tool reported goes in
// a second JSON text block.
func toolResult(resp *tools.Response) *mcp.CallToolResult {
	output := resp.Output
	if len(resp.Binary) > 0 {
		output = "data:" + resp.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(resp.Binary)
	}

	res := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}

	extra := details{Warnings: resp.Warnings, MIMEType: resp.MIMEType, Data: resp.Data}
	if len(resp.Issues) > 0 {
		extra.Issues = resp.Issues
	}
	if resp.Stats != nil {
		extra.Stats = resp.Stats
	}
	if extra.Warnings == nil && extra.Issues == nil && extra.Stats == nil && extra.MIMEType == "" && extra.Data == nil {
		return res
	}

	data, err := json.Marshal(extra)
	if err != nil {
		return res
	}
	res.Content = append(res.Content, &mcp.TextContent{Text: string(data)})
	return res
}

func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(stderrors.New(errors.FormatError(err)))
	return &res
}
