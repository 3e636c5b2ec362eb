package mq

import (
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// FlattenHeaders преобразует AMQP-таблицу заголовков в map[string]string.
//
// Скалярные значения приводятся к строке, составные (вложенные таблицы,
// массивы, байтовые массивы) пропускаются — для окружения скрипта они
// не имеют осмысленного строкового представления.
func FlattenHeaders(table amqp.Table) map[string]string {
	headers := make(map[string]string, len(table))

	for key, value := range table {
		if s, ok := stringValue(value); ok {
			headers[key] = s
		}
	}

	return headers
}

// stringValue приводит значение AMQP-поля к строке.
// Возвращает false для типов без строкового представления.
func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case string:
		return v, true
	case amqp.Decimal:
		return strconv.FormatInt(int64(v.Value), 10), true
	case time.Time:
		return strconv.FormatInt(v.Unix(), 10), true
	default:
		// Table, массивы, []byte, nil
		return "", false
	}
}
