package mq

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Максимальная задержка между попытками redial.
const maxRedialDelay = 30 * time.Second

// Connection держит AMQP соединение и один канал диспетчера.
//
// Переподключение — забота этого слоя, не цикла диспетчеризации:
// при разрыве Connection делает redial с нарастающей задержкой и
// сигналит единственному клиенту (consumer'у) через Reconnected,
// чтобы тот заново вызвал Consume на свежем канале.
type Connection struct {
	url    string
	logger *slog.Logger

	mu      sync.RWMutex
	conn    *amqp.Connection
	channel *amqp.Channel

	// done закрывается в Close и останавливает watch.
	done     chan struct{}
	doneOnce sync.Once

	// reconnected — сигнал consumer'у о новом канале (буфер 1).
	reconnected chan struct{}
}

// Dial подключается к RabbitMQ и запускает слежение за разрывами.
func Dial(url string, logger *slog.Logger) (*Connection, error) {
	c := &Connection{
		url:         url,
		logger:      logger,
		done:        make(chan struct{}),
		reconnected: make(chan struct{}, 1),
	}

	if err := c.dial(); err != nil {
		return nil, err
	}

	go c.watch()

	return c, nil
}

// dial открывает соединение и канал, заменяя текущие.
func (c *Connection) dial() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.channel = ch
	c.mu.Unlock()

	c.logger.Info("connected to RabbitMQ")

	return nil
}

// watch ждёт разрыва соединения и восстанавливает его.
// Завершается только при Close.
func (c *Connection) watch() {
	for {
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		closed := conn.NotifyClose(make(chan *amqp.Error, 1))

		select {
		case <-c.done:
			return
		case err := <-closed:
			if err != nil {
				c.logger.Warn("amqp connection lost", "error", err)
			}
		}

		// Redial с нарастающей задержкой
		delay := time.Second
		for {
			select {
			case <-c.done:
				return
			case <-time.After(delay):
			}

			if err := c.dial(); err != nil {
				c.logger.Warn("redial failed", "delay", delay, "error", err)
				delay = min(delay*2, maxRedialDelay)
				continue
			}

			// Не блокируемся, если consumer ещё не ждёт сигнала
			select {
			case c.reconnected <- struct{}{}:
			default:
			}

			break
		}
	}
}

// Channel возвращает текущий AMQP канал.
func (c *Connection) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// Reconnected возвращает канал сигналов о переподключении.
func (c *Connection) Reconnected() <-chan struct{} {
	return c.reconnected
}

// WithChannel выполняет fn с текущим каналом.
func (c *Connection) WithChannel(fn func(ch *amqp.Channel) error) error {
	ch := c.Channel()
	if ch == nil {
		return fmt.Errorf("no channel available")
	}
	return fn(ch)
}

// IsConnected проверяет, живо ли соединение. Используется healthz.
func (c *Connection) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

// Close останавливает слежение и закрывает канал с соединением.
// Повторные вызовы безопасны.
func (c *Connection) Close() error {
	var errs []error

	c.doneOnce.Do(func() {
		close(c.done)

		c.mu.Lock()
		defer c.mu.Unlock()

		if c.channel != nil {
			if err := c.channel.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close channel: %w", err))
			}
		}
		if c.conn != nil {
			if err := c.conn.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close connection: %w", err))
			}
		}

		c.logger.Info("connection closed")
	})

	return errors.Join(errs...)
}
