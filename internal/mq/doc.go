// Package mq предоставляет инфраструктуру для работы с RabbitMQ.
//
// Структура:
//   - connection.go — управление соединением (reconnect, graceful shutdown)
//   - topology.go   — объявление очереди диспетчера
//   - consumer.go   — потребление сообщений с ручным ack
//   - headers.go    — преобразование AMQP-заголовков в строковую таблицу
//   - publisher.go  — публикация сообщений (harectl send)
//
// Диспетчер работает с одной durable очередью. Exchanges и DLQ не
// используются: сообщение подтверждается после каждой попытки
// обработки и никогда не возвращается в очередь.
package mq
