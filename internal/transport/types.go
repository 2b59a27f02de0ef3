package transport

import "context"

// ChatTarget identifies the destination chat (and optional forum topic).
type ChatTarget struct {
	ChatID   int64
	ThreadID int // telegram forum topic thread id (0 if none)
}

// MessageRef identifies a message the service accepted.
type MessageRef struct {
	ChatID    int64
	ThreadID  int
	MessageID int
}

type SendOptions struct {
	ParseMode      string
	DisablePreview bool
}

// ParseModeMarkdownV2 is the Telegram parse mode used for escaped text.
const ParseModeMarkdownV2 = "MarkdownV2"

// Sender delivers one text message to a chat target.
// Implementations must honor ctx cancellation and bound the call.
type Sender interface {
	SendText(ctx context.Context, to ChatTarget, text string, opt *SendOptions) (MessageRef, error)
}
