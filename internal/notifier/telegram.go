package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
)

// CommandHandler produces the reply text for one slash command. An empty
// reply means no response.
type CommandHandler func(ctx context.Context, command string) string

// TelegramNotifier delivers reports to one chat and answers slash commands
// from it.
type TelegramNotifier struct {
	bot     *bot.Bot
	chatID  string
	handler CommandHandler
	log     *logrus.Logger
}

// NewTelegramNotifier creates the bot client. The handler may be nil when
// command polling is not wanted.
func NewTelegramNotifier(token, chatID string, handler CommandHandler, log *logrus.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{chatID: chatID, handler: handler, log: log}

	b, err := bot.New(token, bot.WithDefaultHandler(n.onUpdate))
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = b
	return n, nil
}

// StartPolling long-polls for updates. Blocks until ctx is cancelled.
func (n *TelegramNotifier) StartPolling(ctx context.Context) {
	n.log.Info("telegram polling started")
	n.bot.Start(ctx)
	n.log.Info("telegram polling stopped")
}

// Send delivers one HTML-formatted message to the configured chat.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendWithRetry sends with exponential backoff. The report survives a flaky
// connection; a dead one surfaces after the last attempt.
func (n *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := n.Send(ctx, text); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			n.log.WithError(err).Warnf("telegram send failed (attempt %d/%d), retrying in %v", i+1, maxRetries+1, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

func (n *TelegramNotifier) onUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if n.handler == nil || update.Message == nil {
		return
	}
	text := strings.TrimSpace(update.Message.Text)
	if !strings.HasPrefix(text, "/") {
		return
	}
	n.log.WithField("command", text).Info("received command")

	reply := n.handler(ctx, text)
	if reply == "" {
		return
	}
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      reply,
		ParseMode: models.ParseModeHTML,
	}); err != nil {
		n.log.WithError(err).Error("send reply failed")
	}
}
