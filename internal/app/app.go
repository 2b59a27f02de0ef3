// Package app wires configuration, logging, the Telegram adapter and the
// MCP server together.
package app

import (
	"context"
	stdlog "log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"tgnotify/internal/config"
	tgmcp "tgnotify/internal/mcp"
	"tgnotify/internal/notify"
	"tgnotify/internal/transport"
	"tgnotify/internal/transport/telegram"
	"tgnotify/pkg/logx"
)

const version = "1.0.0"

type App struct {
	cfg  *config.Config
	logs *logx.Service
	log  logx.Logger
	srv  *server.MCPServer
}

// New loads the configuration and builds the full service graph. Any
// error here is fatal: the process must not serve requests without a
// token, a chat id and a reachable Bot API.
func New(cfgPath string) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logs, log := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File:    logx.FileConfig{Path: cfg.Logging.File.Path},
	})

	adapter, err := telegram.New(telegram.Config{
		Token:  cfg.Telegram.Token,
		APIURL: cfg.Telegram.APIURL,
	}, log.With(logx.String("component", "telegram")))
	if err != nil {
		_ = logs.Close()
		return nil, err
	}

	target := transport.ChatTarget{
		ChatID:   cfg.Telegram.ChatID,
		ThreadID: cfg.Telegram.ThreadID,
	}
	svc := notify.New(adapter, target, log.With(logx.String("component", "notify")))
	d := tgmcp.NewDispatcher(svc, log.With(logx.String("component", "mcp")))

	return &App{
		cfg:  cfg,
		logs: logs,
		log:  log,
		srv:  tgmcp.NewServer(d, version),
	}, nil
}

// Run serves the MCP protocol on stdin/stdout until the client closes
// the stream or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("tgnotify started",
		logx.String("version", version),
		logx.Int64("chat_id", a.cfg.Telegram.ChatID))

	stdio := server.NewStdioServer(a.srv)
	stdio.SetErrorLogger(stdlog.New(errorLogWriter{a.log}, "", 0))
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)

	a.log.Info("tgnotify stopped", logx.Err(err))
	return err
}

func (a *App) Close() error { return a.logs.Close() }

// errorLogWriter routes mcp-go's internal error lines into our logger,
// keeping them off stdout.
type errorLogWriter struct{ log logx.Logger }

func (w errorLogWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimSpace(string(p)); msg != "" {
		w.log.Error(msg)
	}
	return len(p), nil
}
