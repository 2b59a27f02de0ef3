package notify

// prefixForUrgency mirrors the glyph convention used across our bots:
// high screams, medium warns, low stays bare.
func prefixForUrgency(u Urgency) string {
	switch u {
	case UrgencyHigh:
		return "🚨 URGENT: "
	case UrgencyLow:
		return ""
	default:
		return "⚠️ "
	}
}

// FormatText builds the display string: "<prefix><project>: \n\n<message>".
// Escaping for MarkdownV2, when requested, is applied afterwards over the
// whole string, prefix included.
func FormatText(r Request) string {
	return prefixForUrgency(r.Urgency) + r.Project + ": \n\n" + r.Message
}
