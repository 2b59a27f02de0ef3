// Package tgmd provides Telegram MarkdownV2 text helpers.
//
// Telegram's MarkdownV2 parse mode requires every literal occurrence of a
// reserved character to be escape-prefixed with a backslash, with no
// exceptions for sequences that already look escaped. Esc applies that
// rule over the whole input.
package tgmd

import "strings"

// reserved is the full MarkdownV2 reserved set per the Bot API docs.
const reserved = "_*[]()~`>#+-=|{}.!"

// Esc escapes text for Telegram ParseMode="MarkdownV2".
// Every reserved character is prefixed with a backslash; all other
// characters pass through unchanged.
func Esc(s string) string {
	if !strings.ContainsAny(s, reserved) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune(reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
