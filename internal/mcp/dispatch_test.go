package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"tgnotify/internal/notify"
	"tgnotify/internal/transport"
	"tgnotify/pkg/logx"
)

type fakeSender struct {
	calls int
	text  string
	ref   transport.MessageRef
	err   error
}

func (f *fakeSender) SendText(ctx context.Context, to transport.ChatTarget, text string, opt *transport.SendOptions) (transport.MessageRef, error) {
	f.calls++
	f.text = text
	if f.err != nil {
		return transport.MessageRef{}, f.err
	}
	return f.ref, nil
}

func newTestDispatcher(fake *fakeSender) *Dispatcher {
	svc := notify.New(fake, transport.ChatTarget{ChatID: 123}, logx.Nop())
	return NewDispatcher(svc, logx.Nop())
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestDispatchSendSuccess(t *testing.T) {
	t.Parallel()
	fake := &fakeSender{ref: transport.MessageRef{ChatID: 123, MessageID: 42}}
	d := newTestDispatcher(fake)

	res := d.Dispatch(context.Background(), "send_notification", map[string]any{
		"message": "Hello",
		"project": "demo",
	})
	if res.IsError {
		t.Fatalf("unexpected error envelope: %s", resultText(t, res))
	}
	if fake.text != "⚠️ demo: \n\nHello" {
		t.Fatalf("outbound text = %q", fake.text)
	}
	if !strings.Contains(resultText(t, res), "42") {
		t.Fatalf("text should mention the message id: %q", resultText(t, res))
	}
	if res.Meta == nil {
		t.Fatal("expected _meta on success")
	}
	if got := res.Meta["telegram_message_id"]; got != 42 {
		t.Fatalf("telegram_message_id = %v, want 42", got)
	}
}

func TestDispatchSendValidationFailure(t *testing.T) {
	t.Parallel()
	fake := &fakeSender{}
	d := newTestDispatcher(fake)

	res := d.Dispatch(context.Background(), "send_notification", map[string]any{
		"message": "",
		"project": "demo",
	})
	if !res.IsError {
		t.Fatal("expected error envelope")
	}
	if !strings.Contains(resultText(t, res), "message") {
		t.Fatalf("diagnostic should mention the failing field: %q", resultText(t, res))
	}
	if fake.calls != 0 {
		t.Fatalf("rejected request must not reach the sender, got %d calls", fake.calls)
	}
}

func TestDispatchSendNonObjectArguments(t *testing.T) {
	t.Parallel()
	fake := &fakeSender{}
	d := newTestDispatcher(fake)

	res := d.Dispatch(context.Background(), "send_notification", []any{"message"})
	if !res.IsError {
		t.Fatal("expected error envelope")
	}
	if !strings.Contains(resultText(t, res), "invalid arguments format") {
		t.Fatalf("diagnostic = %q", resultText(t, res))
	}
	if fake.calls != 0 {
		t.Fatal("no outbound call expected")
	}
}

func TestDispatchSendDeliveryFailure(t *testing.T) {
	t.Parallel()
	fake := &fakeSender{err: &transport.SendError{Category: transport.CategoryTimeout, Description: "request timed out"}}
	d := newTestDispatcher(fake)

	res := d.Dispatch(context.Background(), "send_notification", map[string]any{
		"message": "Hello",
		"project": "demo",
	})
	if !res.IsError {
		t.Fatal("expected error envelope")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "timeout") || !strings.Contains(text, "request timed out") {
		t.Fatalf("diagnostic should carry category and text: %q", text)
	}
}

func TestDispatchCheckResponseAlwaysDisabled(t *testing.T) {
	t.Parallel()
	fake := &fakeSender{}
	d := newTestDispatcher(fake)

	res := d.Dispatch(context.Background(), "check_notification_response", map[string]any{
		"message_id": float64(42),
		"timeout":    float64(300),
	})
	if res.IsError {
		t.Fatal("check_notification_response must not error")
	}
	if resultText(t, res) != disabledPollingText {
		t.Fatalf("text = %q", resultText(t, res))
	}
	if fake.calls != 0 {
		t.Fatal("no outbound call expected")
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	t.Parallel()
	d := newTestDispatcher(&fakeSender{})

	res := d.Dispatch(context.Background(), "foo", map[string]any{})
	if !res.IsError {
		t.Fatal("expected error envelope")
	}
	if !strings.Contains(resultText(t, res), "foo") {
		t.Fatalf("diagnostic should name the operation: %q", resultText(t, res))
	}
}
