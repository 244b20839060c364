// Package telegram implements the Notifier's Sender over the Telegram
// Bot API.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/hookgate/hookgate/internal/sessionkey"
)

// BotClient is the slice of the Telegram bot surface the Sender needs.
// Wrapping it as an interface, rather than depending on *bot.Bot
// directly, keeps the Sender mockable in tests.
type BotClient interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type realBotClient struct {
	bot *bot.Bot
}

// NewBotClient wraps an initialized *bot.Bot as a BotClient.
func NewBotClient(b *bot.Bot) BotClient {
	return &realBotClient{bot: b}
}

func (r *realBotClient) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	return r.bot.SendMessage(ctx, params)
}

// Sender implements notifier.Sender over a BotClient.
type Sender struct {
	client BotClient
}

// NewSender constructs a Sender over client.
func NewSender(client BotClient) *Sender {
	return &Sender{client: client}
}

// Send delivers text to target's chat, targeting a message thread when
// the session key carried one.
func (s *Sender) Send(ctx context.Context, target sessionkey.Target, text string) error {
	chatID, err := parseChatID(target.ChatID)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if target.HasThread {
		if threadID, err := strconv.Atoi(target.ThreadID); err == nil {
			params.MessageThreadID = threadID
		}
	}
	_, err = s.client.SendMessage(ctx, params)
	return err
}

// parseChatID accepts either a numeric chat id or a @username handle,
// matching the session-key grammar's chatId alphabet (digits, letters,
// underscore, leading minus).
func parseChatID(raw string) (any, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	if raw == "" {
		return nil, fmt.Errorf("empty chat id")
	}
	return raw, nil
}
