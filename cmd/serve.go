package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/config"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/mcpserver"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/server"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, web page and live channel",
	Long: `Start the HTTP server.

Endpoints:
  GET  /                  tool page
  GET  /healthz           health check
  GET  /api/tools         list tools
  GET  /api/tools/{name}  describe a tool
  POST /api/tools/{name}  run a tool with {"input", "data", "options"}
  GET  /ws                live channel; requests are debounced per connection

Examples:
  onestop serve
  onestop serve --port 9000 --debounce 250ms
  onestop serve --host 0.0.0.0 --allow-origin 'app.example.com'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve every tool over the Model Context Protocol on stdio",
	Long: `Serve every tool over the Model Context Protocol on stdin/stdout.

Tool names use underscores and carry the onestop_ prefix, for example
onestop_html_to_jsx. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)

	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "port to serve on, 0 for any free port")
	serveCmd.Flags().String("host", config.DefaultHost, "host to bind to")
	serveCmd.Flags().Duration("debounce", config.DefaultServerDebounce, "quiet period before a live request runs")
	serveCmd.Flags().StringSlice("allow-origin", nil, "extra Origin host patterns allowed for the live channel and CORS")

	AddFlagValidation(serveCmd, "port", ValidatePort)

	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.debounce", serveCmd.Flags().Lookup("debounce"))
	_ = viper.BindPFlag("server.allowed_origins", serveCmd.Flags().Lookup("allow-origin"))
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	srv := server.New(a.cfg, a.registry, a.logger)
	fmt.Fprintf(cmd.ErrOrStderr(), "onestop %s serving on http://%s\n", version.Get().Short(), a.cfg.Server.Addr())
	return srv.Start(ctx)
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	srv := mcpserver.New(a.registry, version.Get().Short(), a.logger)
	return mcpserver.Serve(ctx, srv)
}
