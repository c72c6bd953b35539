// ABOUTME: MCP server command implementation for blogbuild.
// ABOUTME: Starts the MCP server in stdio mode so agents can rebuild and list posts.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcppkg "github.com/2389-research/blogbuild/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for AI agent integration.

The MCP server communicates via stdio and offers build_posts and
list_posts tools backed by the configured source and output paths.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, err := mcppkg.NewServer(globalStore,
		mcppkg.WithSite(siteInfo(globalConfig)),
		mcppkg.WithLogger(globalLogger),
	)
	if err != nil {
		return err
	}

	return server.Serve(ctx)
}
