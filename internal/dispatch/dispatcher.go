package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shaiso/hare/internal/mq"
	"github.com/shaiso/hare/internal/telemetry"
)

// Default configuration values.
const (
	defaultMaxConcurrent = 1
)

// Journal записывает результаты диспетчеризации.
//
// Реализация: repo.JournalRepo. nil — журнал выключен, результаты
// видны только в логе и метриках.
type Journal interface {
	Record(ctx context.Context, o Outcome) error
}

// Dispatcher — цикл диспетчеризации.
//
// Dispatcher:
//   - Получает сообщения из очереди RabbitMQ
//   - Разрешает обработчик по заголовку сообщения
//   - Запускает скрипт с окружением HARE_VAR_*
//   - Подтверждает сообщение после каждой попытки (fire-and-forget)
//
// Состояние между сообщениями не разделяется: overlay и путь скрипта
// локальны для каждого сообщения.
type Dispatcher struct {
	conn    *mq.Connection
	invoker Invoker
	journal Journal

	queue         string
	handlerKey    string
	scriptRoot    string
	maxConcurrent int

	// sem ограничивает число одновременных запусков скриптов.
	sem chan struct{}

	consumer *mq.Consumer

	logger     *slog.Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// Config — конфигурация Dispatcher.
type Config struct {
	// Conn — соединение с RabbitMQ.
	Conn *mq.Connection

	// Queue — очередь для потребления.
	Queue string

	// HandlerKey — заголовок, содержащий имя обработчика.
	HandlerKey string

	// ScriptRoot — каталог скриптов-обработчиков.
	ScriptRoot string

	// Invoker — запуск скриптов (опционально; если nil — ExecInvoker).
	Invoker Invoker

	// Journal — журнал результатов (опционально; nil — выключен).
	Journal Journal

	// MaxConcurrent — граница одновременных запусков (default: 1,
	// строго последовательная обработка).
	MaxConcurrent int

	// Logger
	Logger *slog.Logger
}

// New создаёт новый Dispatcher.
func New(cfg Config) *Dispatcher {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	invoker := cfg.Invoker
	if invoker == nil {
		invoker = ExecInvoker{}
	}

	return &Dispatcher{
		conn:          cfg.Conn,
		invoker:       invoker,
		journal:       cfg.Journal,
		queue:         cfg.Queue,
		handlerKey:    cfg.HandlerKey,
		scriptRoot:    cfg.ScriptRoot,
		maxConcurrent: maxConcurrent,
		sem:           make(chan struct{}, maxConcurrent),
		logger:        logger,
	}
}

// Start запускает потребление сообщений.
func (d *Dispatcher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancelFunc = cancel

	d.logger.Info("starting dispatcher",
		"queue", d.queue,
		"handler_key", d.handlerKey,
		"script_root", d.scriptRoot,
		"max_concurrent", d.maxConcurrent,
	)

	// Prefetch = MaxConcurrent: неподтверждённых сообщений в полёте
	// не больше, чем одновременно работающих скриптов.
	d.consumer = mq.NewConsumer(d.conn, d.logger, mq.ConsumerConfig{
		Queue:    d.queue,
		Handler:  d.handleDelivery,
		Prefetch: d.maxConcurrent,
	})

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("consumer error", "error", err)
		}
	}()

	d.logger.Info("dispatcher started")
	return nil
}

// Stop останавливает Dispatcher и дожидается запущенных скриптов.
func (d *Dispatcher) Stop() {
	d.logger.Info("stopping dispatcher...")

	if d.cancelFunc != nil {
		d.cancelFunc()
	}

	if d.consumer != nil {
		d.consumer.Stop()
	}

	d.wg.Wait()

	d.logger.Info("dispatcher stopped")
}

// handleDelivery обрабатывает одно сообщение.
//
// Захват семафора ограничивает параллелизм; сама обработка идёт в
// отдельной горутине, чтобы при MaxConcurrent > 1 приём следующего
// сообщения не ждал завершения текущего скрипта.
func (d *Dispatcher) handleDelivery(ctx context.Context, del *mq.Delivery) {
	select {
	case d.sem <- struct{}{}:
	case <-ctx.Done():
		// Остановка: сообщение не подтверждаем, брокер передоставит
		// его после рестарта.
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.sem }()

		// Остановка не убивает уже принятое сообщение: скрипт
		// дорабатывает на отвязанном контексте, результат
		// подтверждается, и только потом Stop возвращается.
		runCtx := context.WithoutCancel(ctx)
		outcome := d.dispatch(runCtx, del.Headers)
		d.finish(runCtx, del, outcome)
	}()
}

// dispatch выполняет конвейер для одного набора заголовков.
func (d *Dispatcher) dispatch(ctx context.Context, headers map[string]string) Outcome {
	res, ok := Resolve(headers, d.handlerKey, d.scriptRoot)
	if !ok {
		return Skipped()
	}

	overlay := BuildOverlay(headers)

	telemetry.InflightInvocations.Inc()
	start := time.Now()

	code, err := d.invoker.Invoke(ctx, res.ScriptPath, overlay)

	telemetry.InvocationDuration.Observe(time.Since(start).Seconds())
	telemetry.InflightInvocations.Dec()

	if err != nil {
		return InvocationError(res.Handler, res.ScriptPath, err)
	}

	return Invoked(res.Handler, res.ScriptPath, code)
}

// finish логирует результат, пишет журнал и подтверждает сообщение.
func (d *Dispatcher) finish(ctx context.Context, del *mq.Delivery, o Outcome) {
	switch o.Kind {
	case OutcomeSkipped:
		d.logger.Info("no handler for message",
			"handler_key", d.handlerKey,
			"value", del.Headers[d.handlerKey],
		)
	case OutcomeInvoked:
		telemetry.WithHandler(d.logger, o.Handler).Info("handler finished",
			"script", o.ScriptPath,
			"exit_code", o.ExitCode,
		)
	case OutcomeError:
		telemetry.WithHandler(d.logger, o.Handler).Error("handler invocation failed",
			"script", o.ScriptPath,
			"error", o.Err,
		)
	}

	telemetry.DispatchesTotal.WithLabelValues(string(o.Kind)).Inc()

	if d.journal != nil {
		if err := d.journal.Record(ctx, o); err != nil {
			// Журнал — вспомогательный: его ошибки не влияют
			// на подтверждение сообщения.
			d.logger.Warn("failed to record dispatch", "error", err)
		}
	}

	if ShouldAck(o) {
		if err := del.Ack(); err != nil {
			d.logger.Error("failed to ack message",
				"delivery_tag", del.Raw.DeliveryTag,
				"error", err,
			)
		}
	}
}
