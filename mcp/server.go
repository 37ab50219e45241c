package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP stdio server with the insights tool registered.
func Serve(svc Insights) error {
	s := server.NewMCPServer(
		"brandscope",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, svc)

	return server.ServeStdio(s)
}
