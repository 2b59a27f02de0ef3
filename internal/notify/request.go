package notify

import (
	"errors"
	"strings"
)

// Urgency controls the prefix glyph on the formatted message.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Format selects how the text is prepared for Telegram.
type Format string

const (
	FormatPlain      Format = "plain"
	FormatMarkdownV2 Format = "markdownv2"
)

// Request is one validated send_notification call.
type Request struct {
	Message string
	Project string
	Urgency Urgency
	Format  Format
}

var (
	errArgsFormat = errors.New("invalid arguments format: expected an object")
	errMessage    = errors.New("message is required and must be a non-empty string")
	errProject    = errors.New("project is required and must be a non-empty string")
)

// ParseRequest validates the raw argument bag. Checks run in a fixed
// order and the first failure wins; nothing is sent for a rejected
// request.
//
// Unrecognized urgency and format values deliberately fall back to
// medium and plain instead of erroring. Callers shipping "critical" get
// a medium notification, not a rejection.
func ParseRequest(args any) (Request, error) {
	m, ok := args.(map[string]any)
	if !ok || m == nil {
		return Request{}, errArgsFormat
	}

	message, ok := m["message"].(string)
	if !ok || strings.TrimSpace(message) == "" {
		return Request{}, errMessage
	}
	project, ok := m["project"].(string)
	if !ok || strings.TrimSpace(project) == "" {
		return Request{}, errProject
	}

	return Request{
		Message: strings.TrimSpace(message),
		Project: strings.TrimSpace(project),
		Urgency: parseUrgency(m["urgency"]),
		Format:  parseFormat(m["format"]),
	}, nil
}

func parseUrgency(v any) Urgency {
	s, _ := v.(string)
	switch Urgency(strings.ToLower(strings.TrimSpace(s))) {
	case UrgencyLow:
		return UrgencyLow
	case UrgencyHigh:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

func parseFormat(v any) Format {
	s, _ := v.(string)
	if Format(strings.ToLower(strings.TrimSpace(s))) == FormatMarkdownV2 {
		return FormatMarkdownV2
	}
	return FormatPlain
}
