// Package telemetry обеспечивает наблюдаемость диспетчера.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики
//
// Лог — единственный обязательный канал наблюдаемости: все проблемы
// отдельных сообщений видны только здесь, очередь их не видит.
// Метрики экспортируются на /metrics endpoint демона.
package telemetry
