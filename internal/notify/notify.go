// Package notify pushes plate-order alerts to pavilion-2 operators over the
// Telegram Bot API. Delivery is best-effort: a failed send is logged and
// never surfaces to the caller.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/snekrasov/regcenter/pkg/clients"
)

const sendTimeout = time.Second * 10

type ChatDirectory interface {
	PlateOperatorChatIDs(ctx context.Context) ([]int64, error)
}

type Service struct {
	token     string
	directory ChatDirectory
	client    clients.HTTPClientI
}

func New(token string, directory ChatDirectory, client clients.HTTPClientI) *Service {
	return &Service{
		token:     token,
		directory: directory,
		client:    client,
	}
}

type message struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// PlateOrderPaid tells every active plate operator about a freshly paid
// plate order. Never returns an error: a missing token, an empty recipient
// list, and send failures are all logged and swallowed.
func (s *Service) PlateOrderPaid(ctx context.Context, orderID int, publicID string, total decimal.Decimal, plateQty int) {
	if s.token == "" {
		zap.L().Debug("telegram token not configured, skipping notification")
		return
	}

	chatIDs, err := s.directory.PlateOperatorChatIDs(ctx)
	if err != nil {
		zap.L().Warn("can't resolve plate operator chats", zap.Error(err))
		return
	}
	if len(chatIDs) == 0 {
		zap.L().Debug("no plate operators to notify", zap.Int("order_id", orderID))
		return
	}

	text := fmt.Sprintf(
		"Новый заказ на номера №%d\nЗаказ: %s\nСумма: %s ₽\nКоличество знаков: %d",
		orderID, publicID, total.String(), plateQty)
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.token)

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(sendCtx)
	for _, chatID := range chatIDs {
		chatID := chatID
		g.Go(func() error {
			status, _, err := s.client.PostJSON(gCtx, url, message{ChatID: chatID, Text: text})
			if err != nil {
				return fmt.Errorf("chat %d: %w", chatID, err)
			}
			if status != http.StatusOK {
				return fmt.Errorf("chat %d: telegram returned %d", chatID, status)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("plate order notification failed", zap.Int("order_id", orderID), zap.Error(err))
		return
	}
	zap.L().Info("plate order notification sent",
		zap.Int("order_id", orderID), zap.Int("recipients", len(chatIDs)))
}
