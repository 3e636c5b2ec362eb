package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EnsureQueue объявляет durable очередь диспетчера.
//
// Объявление идемпотентно: если очередь уже существует с теми же
// параметрами, RabbitMQ вернёт её без изменений. Сообщения никогда не
// возвращаются в очередь после обработки, поэтому DLQ не настраивается.
func EnsureQueue(conn *Connection, queue string) error {
	return conn.WithChannel(func(ch *amqp.Channel) error {
		_, err := ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}
		return nil
	})
}
