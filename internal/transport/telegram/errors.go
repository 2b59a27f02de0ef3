package telegram

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	tele "gopkg.in/telebot.v4"

	"tgnotify/internal/transport"
)

// classify maps an error from the Bot API call to the coarse category
// taxonomy. The caller-visible Description stays generic for transport
// failures; the underlying error is kept for logs.
func classify(err error) *transport.SendError {
	var ne net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &ne) && ne.Timeout():
		return &transport.SendError{
			Category:    transport.CategoryTimeout,
			Description: "request timed out",
			Err:         err,
		}
	}

	var uerr *url.Error
	var operr *net.OpError
	if errors.As(err, &uerr) || errors.As(err, &operr) {
		return &transport.SendError{
			Category:    transport.CategoryNetwork,
			Description: "unable to reach Telegram",
			Err:         err,
		}
	}

	var terr *tele.Error
	if errors.As(err, &terr) {
		desc := strings.TrimSpace(terr.Description)
		if desc == "" {
			desc = "Telegram rejected the message"
		}
		return &transport.SendError{
			Category:    transport.CategoryRemoteRejected,
			Description: desc,
			Err:         err,
		}
	}

	// Past the transport checks, a response was received. telebot only
	// returns *Error for descriptions it has a sentinel for; flood (429)
	// and unlisted rejections come back as "telegram: <description>
	// (<code>)". Both are the API declining the request.
	var flood tele.FloodError
	if errors.As(err, &flood) || (err != nil && strings.HasPrefix(err.Error(), "telegram: ")) {
		return &transport.SendError{
			Category:    transport.CategoryRemoteRejected,
			Description: apiDescription(err.Error()),
			Err:         err,
		}
	}

	desc := "notification delivery failed"
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		desc = err.Error()
	}
	return &transport.SendError{
		Category:    transport.CategoryUnknown,
		Description: desc,
		Err:         err,
	}
}

// apiDescription strips telebot's "telegram: <description> (<code>)"
// framing so the caller sees the API's own text.
func apiDescription(s string) string {
	s = strings.TrimPrefix(s, "telegram: ")
	if i := strings.LastIndex(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "Telegram rejected the message"
	}
	return s
}
