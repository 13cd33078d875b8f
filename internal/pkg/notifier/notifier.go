// Package notifier реализует канал доставки уведомлений. Сейчас это
// запись в лог; почтовый или push-транспорт подключается заменой Sender.
package notifier

import (
	"context"

	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type senderLogger interface {
	Info(msg string, fields ...logger.Field)
}

type LogSender struct {
	log senderLogger
}

func NewLogSender(log senderLogger) *LogSender {
	return &LogSender{
		log: log,
	}
}

func (s *LogSender) Send(_ context.Context, notification entities.Notification) error {
	s.log.Info("notification delivered",
		logger.NewField("order", notification.OrderID),
		logger.NewField("recipient", notification.Recipient),
		logger.NewField("type", notification.Type.String()),
		logger.NewField("subject", notification.Subject),
	)
	return nil
}
