package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier пишет в операторский чат о новых и рассмотренных бронях.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, operator notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingReceived(ctx context.Context, b *domain.Booking, r *domain.Round) {
	text := fmt.Sprintf(
		"*New booking %s*\n\n"+"Applicant: %s (%s)\n"+"Round: %s %s\n"+"Payment: %s, %d THB\n"+"Status: %s",
		b.Code,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.FullName),
		b.Category.Label(),
		r.ExamDate.Format(time.DateOnly), r.TimeSlot,
		b.PaymentMethod, b.Price,
		b.Status,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingVerified(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf("*Booking %s verified*\n\nApplicant: %s",
		b.Code, tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.FullName),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf("*Booking %s rejected*\n\nApplicant: %s\nSeat released.",
		b.Code, tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.FullName),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
