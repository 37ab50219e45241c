package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/lukman83/brandscope/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := buildLogger()
	defer log.Sync()

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Brandscope MCP server on stdio...")

	return mcpserver.Serve(buildService(log))
}
