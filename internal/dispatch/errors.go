package dispatch

import "errors"

// Ошибки диспетчера.
var (
	// ErrSpawn — скрипт не удалось запустить (не найден, нет прав,
	// исчерпаны ресурсы). Ненулевой код завершения ошибкой не является.
	ErrSpawn = errors.New("failed to spawn handler script")
)
