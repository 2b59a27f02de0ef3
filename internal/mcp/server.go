package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer builds the MCP server with both tools registered. Tool calls
// run serially per connection; each one completes (including its bounded
// network call) before the next is handled.
func NewServer(d *Dispatcher, version string) *server.MCPServer {
	s := server.NewMCPServer("tgnotify", version, server.WithToolCapabilities(false))

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Raw arguments go through so the dispatcher can reject
		// non-object bags itself.
		return d.Dispatch(ctx, req.Params.Name, req.Params.Arguments), nil
	}

	s.AddTool(sendTool(), handler)
	s.AddTool(checkTool(), handler)
	return s
}

func sendTool() mcp.Tool {
	return mcp.NewTool(toolSendNotification,
		mcp.WithDescription("Send a notification to the configured Telegram chat."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Notification text."),
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project label shown before the message."),
		),
		mcp.WithString("urgency",
			mcp.Description("Urgency of the notification; defaults to medium."),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithString("format",
			mcp.Description("Text format; markdownv2 escapes the message for Telegram MarkdownV2. Defaults to plain."),
			mcp.Enum("plain", "markdownv2"),
		),
	)
}

func checkTool() mcp.Tool {
	return mcp.NewTool(toolCheckResponse,
		mcp.WithDescription("Check for a user response to a sent notification. Currently always reports that response polling is disabled."),
		mcp.WithNumber("message_id",
			mcp.Required(),
			mcp.Description("Telegram message id returned by send_notification."),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Seconds to wait for a response. Ignored while polling is disabled."),
		),
	)
}
