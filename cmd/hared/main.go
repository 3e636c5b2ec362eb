// Hare daemon — диспетчер сообщений RabbitMQ.
//
// hared:
//   - Потребляет сообщения из настроенной очереди
//   - Извлекает имя обработчика из заголовка сообщения
//   - Запускает скрипт script_root/<имя> с окружением HARE_VAR_*
//   - Подтверждает сообщение после каждой попытки
//
// Конфигурация — через переменные HARE_* (см. internal/config).
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/hare/internal/config"
	"github.com/shaiso/hare/internal/dispatch"
	"github.com/shaiso/hare/internal/mq"
	"github.com/shaiso/hare/internal/repo"
	"github.com/shaiso/hare/internal/telemetry"
)

func main() {
	// Конфигурация — до логгера: она знает, куда писать лог
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger, err := telemetry.SetupLogger(cfg.LogDestination)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logging:", err)
		os.Exit(1)
	}

	logger.Info("starting hared",
		"queue", cfg.Queue,
		"handler_key", cfg.HandlerKey,
		"script_root", cfg.ScriptRoot,
		"max_concurrent", cfg.MaxConcurrent,
	)

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Журнал диспетчеризации (опционально)
	var journal dispatch.Journal
	if cfg.DBURL != "" {
		pool, err := repo.NewPool(ctx, cfg.DBURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		journalRepo := repo.NewJournalRepo(pool)
		journal = journalRepo
		logger.Info("dispatch journal enabled")

		janitor, err := repo.NewJanitor(journalRepo, cfg.PruneSchedule, cfg.RetentionDays, logger)
		if err != nil {
			logger.Error("failed to create journal janitor", "error", err)
			os.Exit(1)
		}
		go janitor.Run(ctx)
	}

	// RabbitMQ
	mqConn, err := mq.Dial(cfg.AMQPURL, logger)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer mqConn.Close()

	if err := mq.EnsureQueue(mqConn, cfg.Queue); err != nil {
		logger.Warn("failed to declare queue", "queue", cfg.Queue, "error", err)
	}

	// Создаём диспетчер
	d := dispatch.New(dispatch.Config{
		Conn:          mqConn,
		Queue:         cfg.Queue,
		HandlerKey:    cfg.HandlerKey,
		ScriptRoot:    cfg.ScriptRoot,
		Journal:       journal,
		MaxConcurrent: cfg.MaxConcurrent,
		Logger:        telemetry.WithQueue(logger, cfg.Queue),
	})

	if err := d.Start(ctx); err != nil {
		logger.Error("failed to start dispatcher", "error", err)
		os.Exit(1)
	}

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if !mqConn.IsConnected() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("amqp disconnected"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		addr := ":" + cfg.HTTPPort
		logger.Info("listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()

	d.Stop()
	logger.Info("hared stopped")
}
