package notify

import "tgnotify/internal/transport"

// Outcome is the terminal result of one send attempt. Exactly one
// variant is populated: MessageID on success, Category+Diagnostic on
// failure.
type Outcome struct {
	MessageID int

	Category   transport.ErrorCategory
	Diagnostic string
}

func (o Outcome) OK() bool { return o.Category == "" }
