// Package cli реализует инструмент командной строки harectl.
//
// # Обзор
//
// harectl — операторская утилита диспетчера hare:
//   - send    — публикация тестового сообщения с заголовками
//   - check   — валидация имени обработчика и предпросмотр пути
//   - journal — просмотр журнала диспетчеризации
//
// send работает напрямую с RabbitMQ, journal — напрямую с Postgres:
// у демона нет HTTP API, клиентского слоя между ними нет.
//
// # Output
//
// Output знает, как показать две вещи, которые harectl умеет
// выводить: записи журнала (Records) и результат проверки имени
// обработчика (Resolution). Каждая печатается таблицей
// (text/tabwriter) или, с флагом --json, в JSON. Данные идут в
// stdout, служебные сообщения (Notice) — в stderr, поэтому pipe
// работает: harectl journal --json | jq .
//
// Каждая команда создаётся через фабричную функцию (NewSendCmd и
// т.д.), принимающую замыкания для ленивого доступа к значениям
// PersistentFlags после их парсинга.
package cli
