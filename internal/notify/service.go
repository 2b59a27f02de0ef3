// Package notify implements the notification sender: request
// validation, message formatting, one outbound send, and outcome
// translation. No retries, no queueing, no state across calls.
package notify

import (
	"context"
	"errors"
	"strings"
	"time"

	"tgnotify/internal/transport"
	"tgnotify/pkg/logx"
	"tgnotify/pkg/tgmd"
)

// sendTimeout bounds the whole send operation.
const sendTimeout = 10 * time.Second

type Service struct {
	sender transport.Sender
	target transport.ChatTarget
	log    logx.Logger
}

func New(sender transport.Sender, target transport.ChatTarget, log logx.Logger) *Service {
	return &Service{sender: sender, target: target, log: log}
}

// Send formats and delivers one notification. Every failure is terminal
// and surfaced in the Outcome; nothing is retried.
func (s *Service) Send(ctx context.Context, req Request) Outcome {
	text := FormatText(req)
	opt := &transport.SendOptions{DisablePreview: true}
	if req.Format == FormatMarkdownV2 {
		text = tgmd.Esc(text)
		opt.ParseMode = transport.ParseModeMarkdownV2
	}

	// The Telegram adapter enforces the 10s bound on the HTTP call
	// itself; this deadline covers the pre-send wait and any Sender
	// implementation that honors ctx end to end.
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	ref, err := s.sender.SendText(ctx, s.target, text, opt)
	if err != nil {
		return s.failure(req, err)
	}

	s.log.Debug("notification sent",
		logx.Int64("chat_id", ref.ChatID),
		logx.Int("message_id", ref.MessageID),
		logx.String("project", req.Project),
		logx.String("urgency", string(req.Urgency)))
	return Outcome{MessageID: ref.MessageID}
}

func (s *Service) failure(req Request, err error) Outcome {
	var serr *transport.SendError
	if errors.As(err, &serr) {
		// The underlying cause stays in logs; callers only see the
		// category and the generic (or API-provided) diagnostic.
		s.log.Warn("notification send failed",
			logx.String("category", string(serr.Category)),
			logx.String("project", req.Project),
			logx.Err(err))
		return Outcome{Category: serr.Category, Diagnostic: serr.Description}
	}

	s.log.Error("notification send failed with unclassified error",
		logx.String("project", req.Project),
		logx.Err(err))
	diag := "notification delivery failed"
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		diag = err.Error()
	}
	return Outcome{Category: transport.CategoryUnknown, Diagnostic: diag}
}
