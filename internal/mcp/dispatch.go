// Package mcp exposes tgnotify's two tools over the Model Context
// Protocol. Dispatch is a pure routing layer: it maps an operation name
// plus a raw argument bag to a response envelope and delegates all
// validation to the named handler.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"tgnotify/internal/notify"
	"tgnotify/pkg/logx"
)

const (
	toolSendNotification = "send_notification"
	toolCheckResponse    = "check_notification_response"
)

// disabledPollingText is the fixed reply of check_notification_response.
// The Telegram Bot API forbids a bot from long-polling getUpdates while a
// webhook is registered on the same token, so reply polling stays off and
// the tool exists only to keep the two-operation contract.
const disabledPollingText = "Response checking is disabled: the Telegram Bot API does not " +
	"allow this bot to poll for replies (getUpdates) while push delivery is configured " +
	"on the same token. Notifications are delivered one-way."

type Dispatcher struct {
	notify *notify.Service
	log    logx.Logger
}

func NewDispatcher(svc *notify.Service, log logx.Logger) *Dispatcher {
	return &Dispatcher{notify: svc, log: log}
}

// Dispatch routes one operation to its handler and returns the handler's
// envelope unchanged. Unknown names yield an error envelope naming the
// operation; an unexpected panic is translated into an error envelope
// rather than crashing the process.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args any) (res *mcp.CallToolResult) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("panic in tool handler",
				logx.String("tool", name),
				logx.Any("panic", r))
			res = mcp.NewToolResultError(fmt.Sprintf("unexpected error: %v", r))
		}
	}()

	switch name {
	case toolSendNotification:
		return d.handleSend(ctx, args)
	case toolCheckResponse:
		return d.handleCheck(args)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown tool: %s", name))
	}
}

func (d *Dispatcher) handleSend(ctx context.Context, args any) *mcp.CallToolResult {
	req, err := notify.ParseRequest(args)
	if err != nil {
		// Caller mistake, not a server fault: report it, don't log it.
		return mcp.NewToolResultError(err.Error())
	}

	out := d.notify.Send(ctx, req)
	if !out.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("failed to send notification (%s): %s", out.Category, out.Diagnostic))
	}

	res := mcp.NewToolResultText(fmt.Sprintf("Notification sent to Telegram (message id %d).", out.MessageID))
	res.Meta = map[string]any{
		"telegram_message_id": out.MessageID,
	}
	return res
}

func (d *Dispatcher) handleCheck(args any) *mcp.CallToolResult {
	// message_id and timeout are accepted and ignored: no action is
	// taken, so there is nothing to validate.
	_ = args
	return mcp.NewToolResultText(disabledPollingText)
}
