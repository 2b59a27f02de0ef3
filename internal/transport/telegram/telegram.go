// Package telegram implements transport.Sender on top of the Telegram
// Bot API via telebot.
package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	"tgnotify/internal/transport"
	"tgnotify/pkg/logx"
)

// callTimeout bounds every outbound Bot API call.
const callTimeout = 10 * time.Second

type Config struct {
	Token string

	// APIURL overrides the Bot API endpoint. Leave empty for the public
	// api.telegram.org; set it for a self-hosted Bot API server.
	APIURL string

	// Timeout overrides callTimeout. Zero means the default.
	Timeout time.Duration

	// Offline skips the startup getMe probe. Intended for tests.
	Offline bool
}

type Adapter struct {
	bot     *tele.Bot
	log     logx.Logger
	limiter *rate.Limiter
}

// New validates the token and builds the bot. Unless cfg.Offline is set,
// telebot probes getMe here, so a bad token or an unreachable endpoint
// fails at startup rather than on the first send.
func New(cfg Config, log logx.Logger) (*Adapter, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = callTimeout
	}
	b, err := tele.NewBot(tele.Settings{
		Token:   strings.TrimSpace(cfg.Token),
		URL:     cfg.APIURL,
		Offline: cfg.Offline,
		Client:  &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, err
	}
	return &Adapter{
		bot: b,
		log: log,
		// Client-side flood guard under the Bot API's ~30 msg/s ceiling.
		// It only delays; nothing is dropped, queued or retried.
		limiter: rate.NewLimiter(rate.Limit(20), 5),
	}, nil
}

func (a *Adapter) SendText(ctx context.Context, to transport.ChatTarget, text string, opt *transport.SendOptions) (transport.MessageRef, error) {
	if opt == nil {
		opt = &transport.SendOptions{}
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return transport.MessageRef{}, classify(err)
	}

	chat := &tele.Chat{ID: to.ChatID}
	sendOpt := &tele.SendOptions{
		ParseMode:             opt.ParseMode,
		DisableWebPagePreview: opt.DisablePreview,
		ThreadID:              to.ThreadID,
	}

	msg, err := a.bot.Send(chat, text, sendOpt)
	if err != nil {
		serr := classify(err)
		a.log.Debug("sendMessage failed",
			logx.Int64("chat_id", to.ChatID),
			logx.String("category", string(serr.Category)),
			logx.Err(err))
		return transport.MessageRef{}, serr
	}
	// An ok=true response without an assigned message id is not a
	// success: the success variant carries a positive identifier.
	if msg == nil || msg.ID <= 0 {
		a.log.Debug("sendMessage response missing message id", logx.Int64("chat_id", to.ChatID))
		return transport.MessageRef{}, &transport.SendError{
			Category:    transport.CategoryRemoteRejected,
			Description: "Telegram did not assign a message id",
		}
	}
	return transport.MessageRef{ChatID: to.ChatID, ThreadID: to.ThreadID, MessageID: msg.ID}, nil
}
