// Package dispatch реализует конвейер диспетчеризации сообщений.
//
// # Обзор
//
// Диспетчер получает сообщения из очереди RabbitMQ и запускает внешние
// скрипты-обработчики. Имя обработчика берётся из заголовка сообщения
// (ключ настраивается), остальные заголовки передаются скрипту через
// переменные окружения HARE_VAR_*.
//
// Конвейер одного сообщения:
//
//  1. Resolve — извлечение и валидация имени обработчика,
//     построение пути скрипта (resolver.go)
//  2. BuildOverlay — заголовки → переменные окружения (env.go)
//  3. Invoke — запуск скрипта, ожидание завершения (invoker.go)
//  4. Outcome — журнал, метрики, лог, подтверждение (outcome.go, dispatcher.go)
//
// # Семантика fire-and-forget
//
// Сообщение подтверждается после каждой попытки обработки, независимо
// от результата. Отсутствующий обработчик, невалидное имя, ошибка
// запуска, ненулевой код завершения — всё это не приводит к
// передоставке: повторный запуск сломанного скрипта не поможет.
// Решение зафиксировано в ShouldAck и покрыто тестами.
//
// # Параллелизм
//
// По умолчанию сообщения обрабатываются строго последовательно:
// следующее сообщение берётся после подтверждения предыдущего.
// MaxConcurrent > 1 разрешает параллельные запуски; prefetch
// consumer'а равен этой границе, так что число скриптов в полёте
// всегда ограничено.
package dispatch
