package dispatch

import (
	"slices"
	"strings"
)

// EnvPrefix — префикс переменных окружения, передаваемых скрипту.
const EnvPrefix = "HARE_VAR_"

// BuildOverlay строит переменные окружения скрипта из заголовков
// сообщения: каждая пара (k, v) даёт HARE_VAR_<UPPER(k)>=v.
//
// Значения передаются как есть, без фильтрации и экранирования.
// Ключи обходятся в отсортированном порядке, поэтому результат
// детерминирован: если два разных ключа совпадают после приведения к
// верхнему регистру, побеждает лексикографически больший исходный ключ.
func BuildOverlay(headers map[string]string) map[string]string {
	overlay := make(map[string]string, len(headers))

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		overlay[EnvPrefix+strings.ToUpper(k)] = headers[k]
	}

	return overlay
}
