// Package logx configures tgnotify's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured
//   - Everything on stderr or file; stdout belongs to the protocol stream
package logx
