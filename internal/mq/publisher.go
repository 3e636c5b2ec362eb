package mq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует сообщения в очередь диспетчера.
//
// Используется harectl для отправки тестовых сообщений. Публикация
// идёт через default exchange: routing key равен имени очереди.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish отправляет сообщение с заголовками в указанную очередь.
func (p *Publisher) Publish(ctx context.Context, queue string, headers map[string]string, body []byte) error {
	table := make(amqp.Table, len(headers))
	for k, v := range headers {
		table[k] = v
	}

	messageID := uuid.New().String()

	return p.conn.WithChannel(func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			"",    // exchange (default)
			queue, // routing key
			false,
			false,
			amqp.Publishing{
				Headers:      table,
				DeliveryMode: amqp.Persistent, // сообщение переживёт рестарт RabbitMQ
				MessageId:    messageID,
				Timestamp:    time.Now(),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s: %w", queue, err)
		}

		p.logger.Debug("published message",
			"queue", queue,
			"message_id", messageID,
			"headers", len(headers),
		)

		return nil
	})
}
