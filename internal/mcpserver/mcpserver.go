// Package mcpserver exposes the portfolio bot's tools over the Model Context Protocol.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/pkg/tools"
)

const (
	serverName = "portfolio-bot"
	textArg    = "text"
)

// New builds an MCP server with one MCP tool per registered tool.
func New(manager *tools.ToolManager, version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version, server.WithToolCapabilities(false))
	handler := dispatch(manager)

	for _, t := range manager.List() {
		mcpTool := mcp.NewTool(t.Name(),
			mcp.WithDescription(t.Description()),
			mcp.WithString(textArg,
				mcp.Required(),
				mcp.Description("The visitor's message, verbatim."),
			),
		)
		s.AddTool(mcpTool, handler)
		logger.L.Info("Registered MCP tool", "tool", t.Name())
	}
	return s
}

// dispatch resolves the called tool by name in manager and runs it. Unknown tools and
// tool failures are reported to the client as error results, not protocol errors.
func dispatch(manager *tools.ToolManager) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.Params.Name
		t, err := manager.GetTool(name)
		if err != nil {
			logger.L.Warn("MCP call for unknown tool", "tool", name)
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString(textArg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := t.Run(ctx, text)
		if err != nil {
			logger.L.Warn("MCP tool failed", "tool", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// ServeStdio serves s on stdin/stdout until the input is closed.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
